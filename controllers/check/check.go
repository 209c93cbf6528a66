package check

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"healthtrack-api/database"
	"healthtrack-api/services/events"
	"healthtrack-api/services/trackLog"
	"healthtrack-api/utils"

	"github.com/gin-gonic/gin"
)

type AliveResponse struct {
	Success  bool      `json:"success"`
	Messsage string    `json:"message"`
	Info     CheckInfo `json:"info"`
}

type CheckInfo struct {
	Mongo      string `json:"mongo"`
	RabbitMQ   string `json:"rabbitmq"`
	RoutineNum int    `json:"routine_num"`
}

type Controller struct {
	db *database.DB
}

func NewController(db *database.DB) *Controller {
	return &Controller{db: db}
}

func (ctl *Controller) CheckAlive(c *gin.Context) {
	success := true
	resMsg := "main thread alive"
	checkInfo := CheckInfo{Mongo: "ok", RabbitMQ: "disabled"}

	// 檢查mongo連線
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := ctl.db.Ping(ctx); err != nil {
		success = false
		checkInfo.Mongo = err.Error()
		resMsg = fmt.Sprintf("mongo ping fail: %s", err.Error())
		trackLog.Error(resMsg, false)
	}

	if utils.EnvConfig.RabbitMQ.Enable == 1 {
		checkInfo.RabbitMQ = "ok"
		conn := events.GetConnection("healthtrack")
		if conn == nil || conn.Conn == nil || conn.Conn.IsClosed() {
			checkInfo.RabbitMQ = "connection lost"
			resMsg = "rabbitmq connection lost, events are dropped"
			trackLog.Error(resMsg, false)
			if conn != nil {
				if err := conn.Reconnect(); err != nil {
					resMsg = fmt.Sprintf("reconnect rabbit fail: %s", err.Error())
					trackLog.Error(resMsg, false)
				}
			}
		}
	}

	trackLog.Info(fmt.Sprintf("goroutine number: %d\n", runtime.NumGoroutine()), false)
	checkInfo.RoutineNum = runtime.NumGoroutine()

	c.JSON(http.StatusOK, AliveResponse{success, resMsg, checkInfo})
	return
}
