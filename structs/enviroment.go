package structs

type EnviromentModel struct {
	Database database
	RabbitMQ rabbitmq
	Log      log
	Router   router
}

type database struct {
	URL  string
	Name string
}

type rabbitmq struct {
	Enable int
	Domain string
	Queue  string
}

type log struct {
	ElkEnable      int
	ElkIndex       string
	ElkURL         string
	LogstashEnable int
	LogstashURL    string
	LogstashIndex  string
}

type router struct {
	Port int
}
