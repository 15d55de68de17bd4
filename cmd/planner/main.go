package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"world-travel-planner/internal/adapters/distance"
	"world-travel-planner/internal/adapters/repositories"
	"world-travel-planner/internal/catalog"
	"world-travel-planner/internal/config"
	"world-travel-planner/internal/domain"
	"world-travel-planner/internal/platform/graceful"
	"world-travel-planner/internal/render"
	"world-travel-planner/internal/services"

	"github.com/AlecAivazis/survey/v2"
)

const (
	cityPrompt = "Enter your starting city:"
	modePrompt = "Do you want to show the min routes? Y - Min Route; N - Max:"
)

var errInvalidCity = errors.New("Please enter a valid city code.")

func main() {
	startedAt := time.Now()

	city := flag.String("city", "", "starting city code, prompts when empty")
	maximize := flag.Bool("max", false, "plan the maximum-distance route")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	config.Load()

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	if err := run(ctx, *city, *maximize, *noColor, startedAt); err != nil {
		log.Printf("planner failed: err=%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, city string, maximize, noColor bool, startedAt time.Time) error {
	repo, closeRepo, err := repositories.Open(config.CatalogFromEnv())
	if err != nil {
		return err
	}
	defer closeRepo()

	cat, err := catalog.Load(ctx, repo)
	if err != nil {
		return err
	}

	printer := render.NewPrinter(os.Stdout, noColor || config.Bool("NO_COLOR", false))

	minimize := !maximize
	if city == "" {
		printer.Clear()
		printer.Banner()

		city, minimize, err = ask(cat)
		if err != nil {
			return err
		}
	}

	plan, err := services.PlanItinerary(ctx, cat, catalog.NormalizeID(city), domain.ModeFromMinimize(minimize), distance.NewGreatCircleProvider())
	if err != nil {
		return err
	}

	printer.Itinerary(plan)
	printer.Elapsed(time.Since(startedAt))
	return nil
}

// ask prompts for the starting city and the planning mode.
func ask(cat *catalog.Catalog) (string, bool, error) {
	var city string
	if err := survey.AskOne(&survey.Input{Message: cityPrompt}, &city, survey.WithValidator(cityValidator(cat))); err != nil {
		return "", false, fmt.Errorf("ask city: %w", err)
	}

	minimize := true
	if err := survey.AskOne(&survey.Confirm{Message: modePrompt, Default: true}, &minimize); err != nil {
		return "", false, fmt.Errorf("ask mode: %w", err)
	}

	return city, minimize, nil
}

// cityValidator accepts any catalog city code, case-insensitively.
func cityValidator(cat *catalog.Catalog) survey.Validator {
	return func(ans interface{}) error {
		s, ok := ans.(string)
		if !ok {
			return errInvalidCity
		}
		if _, found := cat.Lookup(catalog.NormalizeID(s)); !found {
			return errInvalidCity
		}
		return nil
	}
}
