package main

import (
	"fmt"

	"github.com/zsmartex/presale/config"
	"github.com/zsmartex/presale/mq_client"
	"github.com/zsmartex/presale/routes"
)

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}
	mq_client.Connect()

	r := routes.SetupRouter()
	// running
	r.Listen(":3000")
}
