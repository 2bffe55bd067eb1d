package main

import (
	"github.com/corray333/cargo-manager/internal/app"
	"github.com/corray333/cargo-manager/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
