package main

import (
	"github.com/jayspar44/sammy-sub000/config"
	"github.com/jayspar44/sammy-sub000/routes"
	"github.com/jayspar44/sammy-sub000/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
