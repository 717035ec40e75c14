// Package console implements the interactive menu front-end of movielist.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog/log"

	"github.com/saltyorg/movielist/internal/model"
)

const (
	headerText  = "Movie List"
	goodbyeText = "Goodbye!"
	figureFont  = "slant"
)

const clearSequence = "\033[H\033[2J"

// Catalog is the set of catalog operations the console drives.
type Catalog interface {
	ListCategories() []model.Category
	GetCategory(id int64) *model.Category
	ListAllMovies() []model.Movie
	ListMoviesByCategory(categoryID int64) []model.Movie
	ListMoviesByYear(year int) []model.Movie
	AddMovie(movie model.Movie)
	DeleteMovie(id int64)
}

// Options tunes terminal behaviour. The zero value never clears or sleeps.
type Options struct {
	ClearScreen bool
	// Pause is the base delay after status messages; welcome and goodbye wait twice as long.
	Pause time.Duration
}

// Console reads menu choices from in and renders results to out.
type Console struct {
	catalog Catalog
	in      *bufio.Reader
	out     io.Writer
	opts    Options
	eof     bool
}

// New creates a console over the given streams.
func New(catalog Catalog, in io.Reader, out io.Writer, opts Options) *Console {
	return &Console{
		catalog: catalog,
		in:      bufio.NewReader(in),
		out:     out,
		opts:    opts,
	}
}

// Run shows the welcome screen and processes menu choices until the user
// exits or the input ends.
func (c *Console) Run() {
	c.welcome()
	for !c.eof {
		c.menu()
		choice, ok := c.readLine("Enter your choice: ")
		if !ok {
			break
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.displayAllMovies()
			c.waitForEnter()
		case "2":
			c.displayCategories()
			c.waitForEnter()
		case "3":
			c.displayMoviesByCategory()
		case "4":
			c.displayMoviesByYear()
		case "5":
			c.addMovie()
		case "6":
			c.deleteMovie()
		case "7":
			c.goodbye()
			return
		default:
			c.println("Invalid choice.")
			c.sleep(1)
		}
	}
	log.Debug().Msg("Console input closed")
	c.goodbye()
}

func (c *Console) welcome() {
	c.clear()
	c.printHeader()
	c.println("Welcome to the Movie List Program!")
	c.sleep(2)
}

func (c *Console) menu() {
	c.clear()
	c.printHeader()
	c.println("Menu:")
	c.println("1. Display All Movies")
	c.println("2. Display All Categories")
	c.println("3. Display Movies by Category")
	c.println("4. Display Movies by Year")
	c.println("5. Add a Movie")
	c.println("6. Delete a Movie")
	c.println("7. Exit")
}

func (c *Console) displayAllMovies() {
	movies := c.catalog.ListAllMovies()
	if len(movies) == 0 {
		c.println("No movies found.")
		return
	}
	c.println("\nAll Movies:")
	for _, movie := range movies {
		c.println(movie.String())
	}
}

func (c *Console) displayCategories() {
	categories := c.catalog.ListCategories()
	if len(categories) == 0 {
		c.println("No categories found.")
		return
	}
	c.println("\nCategories:")
	for _, category := range categories {
		c.println(category.String())
	}
}

func (c *Console) displayMovies(movies []model.Movie, title string) {
	if len(movies) == 0 {
		c.printf("No movies found %s.\n", title)
		return
	}
	c.printf("\nMovies %s:\n", title)
	for _, movie := range movies {
		c.println(movie.String())
	}
}

func (c *Console) displayMoviesByCategory() {
	c.displayCategories()
	categoryID, ok := c.readInt("Enter category id: ")
	if !ok {
		return
	}
	movies := c.catalog.ListMoviesByCategory(int64(categoryID))
	c.displayMovies(movies, fmt.Sprintf("for category %d", categoryID))
	c.waitForEnter()
}

func (c *Console) displayMoviesByYear() {
	year, ok := c.readInt("Enter movie year: ")
	if !ok {
		return
	}
	movies := c.catalog.ListMoviesByYear(year)
	c.displayMovies(movies, fmt.Sprintf("from year %d", year))
	c.waitForEnter()
}

func (c *Console) addMovie() {
	name, ok := c.readLine("Enter movie name: ")
	if !ok {
		return
	}
	year, ok := c.readInt("Enter movie year: ")
	if !ok {
		return
	}
	minutes, ok := c.readInt("Enter movie duration (minutes): ")
	if !ok {
		return
	}
	c.displayCategories()
	categoryID, ok := c.readInt("Enter category id: ")
	if !ok {
		return
	}

	category := c.catalog.GetCategory(int64(categoryID))
	if category == nil {
		c.println("Invalid category id.")
		c.sleep(1)
		return
	}

	movie := model.NewMovie()
	movie.Name = name
	movie.Year = year
	movie.Minutes = minutes
	movie.Category = category
	c.catalog.AddMovie(movie)

	c.println("Movie added.")
	c.sleep(1)
}

func (c *Console) deleteMovie() {
	id, ok := c.readInt("Enter movie id to delete: ")
	if !ok {
		return
	}
	c.catalog.DeleteMovie(int64(id))
	c.println("Movie deleted if existed.")
	c.sleep(1)
}

// goodbye spells out the farewell one letter per frame when the screen can be
// cleared, and prints only the final frame otherwise.
func (c *Console) goodbye() {
	frames := goodbyeFrames()
	if !c.opts.ClearScreen {
		c.printf("%s", frames[len(frames)-1])
		c.sleep(2)
		return
	}
	for _, frame := range frames {
		c.clear()
		c.printf("%s", frame)
		time.Sleep(c.opts.Pause * 3 / 10)
	}
	c.sleep(2)
}

func goodbyeFrames() []string {
	frames := make([]string, 0, len(goodbyeText))
	for i := 1; i <= len(goodbyeText); i++ {
		frames = append(frames, render(goodbyeText[:i]))
	}
	return frames
}

func render(text string) string {
	return figure.NewFigure(text, figureFont, true).String()
}

func (c *Console) printHeader() {
	c.println(render(headerText))
}

func (c *Console) waitForEnter() {
	c.readLine("Press Enter to continue...")
}

// readLine prompts and returns one line without its terminator.
// It reports false once the input is exhausted.
func (c *Console) readLine(prompt string) (string, bool) {
	if c.eof {
		return "", false
	}
	c.printf("%s", prompt)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			log.Error().Err(err).Msg("Failed to read console input")
		}
		c.eof = true
		if line == "" {
			c.println("")
			return "", false
		}
	}
	return strings.TrimRight(line, "\r\n"), true
}

// readInt prompts until the user enters an integer.
func (c *Console) readInt(prompt string) (int, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return 0, false
		}
		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return value, true
		}
		c.println("Invalid input. Enter an integer.")
	}
}

func (c *Console) clear() {
	if c.opts.ClearScreen {
		c.printf("%s", clearSequence)
	}
}

func (c *Console) sleep(units int) {
	if c.opts.Pause > 0 {
		time.Sleep(time.Duration(units) * c.opts.Pause)
	}
}

func (c *Console) println(text string) {
	fmt.Fprintln(c.out, text)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
