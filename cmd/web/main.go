package main

import "campus_backend/internal/app"

func main() {
	app.Run()
}
