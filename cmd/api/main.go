package main

import (
	"context"
	"log"

	"github.com/stockroom/stockroom-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("stockroom API failed: %v", err)
	}
}
