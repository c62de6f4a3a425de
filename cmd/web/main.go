package main

import "skaters_backend/internal/app"

func main() {
	app.Run()
}
