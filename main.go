package main

import (
	auction "auction-server/internal/auctionService"
	"auction-server/internal/repository"
	"auction-server/internal/server"
	"fmt"
	"os"
)

func main() {

	state := repository.NewAuctionState()

	auctionSvc := auction.NewAuctionService(state)

	router := server.SetupRouter(auctionSvc)

	port := getPort()
	fmt.Printf("Auction server listening on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
