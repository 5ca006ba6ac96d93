package main

import (
	"github.com/GoodHedi/trackinglife/config"
	"github.com/GoodHedi/trackinglife/routes"
)

func main() {
	config.Load()
	config.InitDB()
	r := routes.SetupRouter()
	r.Run(":" + config.Envs.Port)
}
