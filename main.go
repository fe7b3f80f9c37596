package main

import (
	"fmt"
	"log"

	"trucosrv/server"
)

func main() {
	fmt.Println("Starting Truco Game Backend...")

	s := server.NewServer()
	err := s.Start("7777")

	if err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
