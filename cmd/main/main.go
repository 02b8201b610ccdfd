package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	bulkimport "github.com/ballotsync/ballotsync/internal/bulkimport"
	chain "github.com/ballotsync/ballotsync/internal/chain"
	config "github.com/ballotsync/ballotsync/internal/config"
	db "github.com/ballotsync/ballotsync/internal/database/connection"
	repositories "github.com/ballotsync/ballotsync/internal/database/repositories"
	models "github.com/ballotsync/ballotsync/internal/models"
	reconcile "github.com/ballotsync/ballotsync/internal/reconcile"
	wallet "github.com/ballotsync/ballotsync/internal/wallet"
)

func main() {
	godotenv.Load()

	electionId := flag.String("election", "", "election id to operate on")
	seedSeats := flag.String("seed", "", "create the election with the given comma separated seat set")
	importFile := flag.String("import", "", "bulk import candidates from a delimited text file")
	list := flag.Bool("list", false, "list the election roster with on-chain vote counts")
	flag.Parse()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config/config.yml"
	}

	err := config.InitializeGlobalConfig(configFile)
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}

	dbFile := os.Getenv("DATABASE_FILE")
	if dbFile == "" {
		dbFile = config.GlobalConfig.DatabaseConfig.File
	}

	err = db.InitializeGlobalDB(dbFile)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	err = repositories.InitializeGlobalRepositories(db.GlobalDB)
	if err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}

	provider, registry := buildBackend()

	adapter := wallet.NewAdapter(provider)

	ctx := context.Background()
	if _, err := adapter.Connect(ctx); err != nil {
		log.Fatalf("Failed to connect wallet: %v", err)
	}

	registryConfig := config.GlobalConfig.RegistryConfig
	client := chain.NewChainRegistryClient(adapter, registry, registryConfig.Address, registryConfig.ExpectedChainId)

	service := reconcile.NewReconciliationService(repositories.GlobalCandidateRepository, repositories.GlobalElectionRepository, client)

	if *electionId == "" {
		log.Fatal("|Main| -election is required")
	}

	if *seedSeats != "" {
		election := &models.Election{
			Id:    *electionId,
			Name:  *electionId,
			Seats: strings.Split(*seedSeats, ","),
		}

		if err := repositories.GlobalElectionRepository.Create(election); err != nil {
			log.Fatalf("Failed to seed election: %v", err)
		}

		log.Printf("|Main| Seeded election %s with seats %v", election.Id, election.Seats)
	}

	if *importFile != "" {
		runImport(ctx, service, *electionId, *importFile)
	}

	if *list {
		runList(ctx, service, *electionId)
	}
}

func buildBackend() (wallet.Provider, chain.Registry) {
	walletConfig := config.GlobalConfig.WalletConfig

	if walletConfig.Backend == config.WalletBackendRpc {
		provider := wallet.NewRPCProvider(walletConfig.RpcUrl)
		registry := chain.NewRPCRegistry(provider, config.GlobalConfig.RegistryConfig.Address)
		return provider, registry
	}

	provider := wallet.NewMockProvider(walletConfig.Accounts, walletConfig.DefaultChainId)
	registry := chain.NewMemoryRegistry()
	provider.SetTxApplier(registry)
	provider.Connect()

	return provider, registry
}

func runImport(ctx context.Context, service *reconcile.ReconciliationService, electionId string, importFile string) {
	rawText, err := os.ReadFile(importFile)
	if err != nil {
		log.Fatalf("Failed to read import file: %v", err)
	}

	processor := bulkimport.NewBulkImportProcessor(service)

	result, err := processor.Import(ctx, electionId, string(rawText))
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	for _, failed := range result.Failed {
		log.Printf("|Main| Failed row %q: %s", failed.InputRow, failed.Reason)
	}

	log.Printf("|Main| Imported %d of %d rows", len(result.Successful), result.TotalRows())
}

func runList(ctx context.Context, service *reconcile.ReconciliationService, electionId string) {
	views, err := service.ListWithVotes(ctx, electionId)
	if err != nil {
		log.Fatalf("Failed to list candidates: %v", err)
	}

	for _, view := range views {
		synced := "synced"
		if !view.Synced {
			synced = "unsynced"
		}

		fmt.Printf("%-20s %-16s votes=%-6d %s\n", view.Candidate.Name, view.Candidate.Seat, view.Votes, synced)
	}
}
