package main

import (
	"github.com/Jimmyu2foru18/NC-Practice-Website/internal/app"
	"go.uber.org/fx"
)

func main() {
	fx.New(app.CreateApp()).Run()
}
