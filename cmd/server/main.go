package main

import "iq-home/quotes_backend/internal/app"

func main() {
	app.Run()
}
