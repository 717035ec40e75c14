package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/saltyorg/movielist/internal/model"
)

func moviesCmd() *cobra.Command {
	var categoryID int64
	var year int
	cmd := &cobra.Command{
		Use:   "movies",
		Short: "List movies, optionally filtered by category or year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			byCategory := cmd.Flags().Changed("category")
			byYear := cmd.Flags().Changed("year")
			if byCategory && byYear {
				return fmt.Errorf("--category and --year cannot be combined")
			}

			db, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore(db)

			var movies []model.Movie
			switch {
			case byCategory:
				movies, err = db.MoviesByCategory(categoryID)
			case byYear:
				movies, err = db.MoviesByYear(year)
			default:
				movies, err = db.Movies()
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(movies) == 0 {
				fmt.Fprintln(out, "No movies found.")
				return nil
			}
			for _, movie := range movies {
				fmt.Fprintln(out, movie)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&categoryID, "category", 0, "Category id to filter")
	cmd.Flags().IntVar(&year, "year", 0, "Release year to filter")
	return cmd
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore(db)

			categories, err := db.Categories()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(categories) == 0 {
				fmt.Fprintln(out, "No categories found.")
				return nil
			}
			for _, category := range categories {
				fmt.Fprintln(out, category)
			}
			return nil
		},
	}
}

func addCmd() *cobra.Command {
	var name string
	var year int
	var minutes int
	var categoryID int64
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a movie",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("--name is required")
			}
			if minutes < 0 {
				return fmt.Errorf("--minutes must not be negative")
			}

			db, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore(db)

			category, err := db.Category(categoryID)
			if err != nil {
				return err
			}
			if category == nil {
				return fmt.Errorf("invalid category id: %d", categoryID)
			}

			movie := model.NewMovie()
			movie.Name = name
			movie.Year = year
			movie.Minutes = minutes
			movie.Category = category

			id, err := db.AddMovie(movie)
			if err != nil {
				return err
			}
			movie.ID = id

			log.Info().Int64("movie_id", id).Str("name", name).Msg("Movie added")
			fmt.Fprintln(cmd.OutOrStdout(), movie)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Movie name")
	cmd.Flags().IntVar(&year, "year", model.DefaultYear, "Release year")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Runtime in minutes")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "Category id")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a movie by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid movie id %q: %w", args[0], err)
			}

			db, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore(db)

			affected, err := db.DeleteMovie(id)
			if err != nil {
				return err
			}
			if affected == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No movie with id %d.\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Movie %d deleted.\n", id)
			return nil
		},
	}
}

func maintenanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "maintenance",
		Short: "Optimize and vacuum the database file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore(db)

			if err := db.Optimize(); err != nil {
				return err
			}
			reclaimed, err := db.Vacuum()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Maintenance complete for %s: %s reclaimed.\n", db.Path(), humanize.IBytes(uint64(reclaimed)))
			return nil
		},
	}
}
