package utils

import (
	"fmt"
	"strings"

	"healthtrack-api/structs"

	"github.com/spf13/viper"
)

var EnvConfig *structs.EnviromentModel

type EnvService struct{}

func (e *EnvService) InitEnv() {
	e.loadConfig()
	e.configToModel()
}

func (e *EnvService) loadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {

			// 找不到 config.yml 的話就抓取環境變數
			viper.AutomaticEnv()
			viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		} else {
			panic(fmt.Errorf("Fatal error config file: %s \n", err))
		}
	}
	return
}

func (e *EnvService) configToModel() {
	var config structs.EnviromentModel
	config.Database.URL = viper.GetString("database.url")
	config.Database.Name = viper.GetString("database.name")
	config.RabbitMQ.Enable = viper.GetInt("rabbitmq.enable")
	config.RabbitMQ.Domain = viper.GetString("rabbitmq.domain")
	config.RabbitMQ.Queue = viper.GetString("rabbitmq.queue")
	config.Log.ElkEnable = viper.GetInt("log.elk.enable")
	config.Log.ElkIndex = viper.GetString("log.elk.index")
	config.Log.ElkURL = viper.GetString("log.elk.url")
	config.Log.LogstashEnable = viper.GetInt("log.logstash.enable")
	config.Log.LogstashURL = viper.GetString("log.logstash.url")
	config.Log.LogstashIndex = viper.GetString("log.logstash.index")
	config.Router.Port = viper.GetInt("router.port")
	if config.Database.Name == "" {
		config.Database.Name = "health_tracker"
	}
	if config.RabbitMQ.Queue == "" {
		config.RabbitMQ.Queue = "health-records"
	}
	if config.Router.Port == 0 {
		config.Router.Port = 8000
	}
	EnvConfig = &config
}
