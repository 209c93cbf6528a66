package main

import (
	"fmt"
	"log"

	"healthtrack-api/database"
	"healthtrack-api/router"
	"healthtrack-api/services/events"
	"healthtrack-api/services/trackLog"
	"healthtrack-api/utils"
)

func main() {

	// 初始化 env
	var envService utils.EnvService
	envService.InitEnv()
	fmt.Println("參數初始化成功...")

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("mongo init: %s", err.Error())
	}
	defer db.Close()
	fmt.Println("資料庫初始化成功...")

	trackLog.LogTrackInit()
	events.Init()

	route := router.Router(db)
	if err := route.Run(fmt.Sprintf(":%d", utils.EnvConfig.Router.Port)); err != nil {
		trackLog.Error(err.Error(), true)
	}
}
