// Backfills the organization field on job postings that predate it, using
// the posting author's organization. Dry-run by default.
//
//	go run ./cmd/backfill-organizations            # report what would change
//	go run ./cmd/backfill-organizations -live      # apply changes
//	go run ./cmd/backfill-organizations -verify    # count remaining gaps
package main

import (
	"flag"
	"fmt"
	"os"

	"jobboard_backend/database"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/repositories"
)

func main() {
	live := flag.Bool("live", false, "apply changes instead of reporting them")
	verify := flag.Bool("verify", false, "only count postings still missing an organization")
	limit := flag.Int("limit", 0, "max postings to process (0 = all)")
	flag.Parse()

	config.LoadConfig()
	logger.Init(config.AppConfig.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	jobRepo := repositories.NewJobRepository(gormDB)
	userRepo := repositories.NewUserRepository(gormDB)

	if *verify {
		count, err := jobRepo.CountWithoutOrganization()
		if err != nil {
			logger.Fatal("Count failed", "error", err)
		}
		fmt.Printf("%d job postings have no organization\n", count)
		return
	}

	jobs, err := jobRepo.FindWithoutOrganization(*limit)
	if err != nil {
		logger.Fatal("Failed to load postings", "error", err)
	}

	var updated, skipped, failed int
	for i := range jobs {
		job := &jobs[i]

		author, err := userRepo.FindByID(job.AuthorID)
		if err != nil {
			fmt.Printf("SKIP  %s (%s): author not found\n", job.Slug, job.ID)
			skipped++
			continue
		}
		if author.OrganizationID == nil {
			fmt.Printf("SKIP  %s (%s): author has no organization\n", job.Slug, job.ID)
			skipped++
			continue
		}

		if !*live {
			fmt.Printf("WOULD %s (%s) -> organization %s\n", job.Slug, job.ID, *author.OrganizationID)
			updated++
			continue
		}

		job.OrganizationID = author.OrganizationID
		if err := jobRepo.Save(job); err != nil {
			fmt.Printf("FAIL  %s (%s): %v\n", job.Slug, job.ID, err)
			failed++
			continue
		}
		fmt.Printf("OK    %s (%s) -> organization %s\n", job.Slug, job.ID, *author.OrganizationID)
		updated++
	}

	mode := "dry-run"
	if *live {
		mode = "live"
	}
	fmt.Printf("\n%s complete: %d updated, %d skipped, %d failed (of %d candidates)\n",
		mode, updated, skipped, failed, len(jobs))

	if failed > 0 {
		os.Exit(1)
	}
}
