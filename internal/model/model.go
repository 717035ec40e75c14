package model

import "fmt"

// DefaultYear is the release year assigned to a movie built with NewMovie.
const DefaultYear = 2000

// unknownCategory is displayed for a movie with no category attached.
const unknownCategory = "Unknown"

// Category groups movies. The zero value is the empty placeholder category.
type Category struct {
	ID   int64
	Name string
}

// String renders the category as "{id}: {name}".
func (c Category) String() string {
	return fmt.Sprintf("%d: %s", c.ID, c.Name)
}

// Movie is a catalog entry. Movies read from the database always carry
// their category; a nil Category only occurs on values built in memory.
type Movie struct {
	ID       int64
	Name     string
	Year     int
	Minutes  int
	Category *Category
}

// NewMovie returns the placeholder movie used before fields are collected.
func NewMovie() Movie {
	return Movie{Year: DefaultYear}
}

// CategoryName returns the name of the attached category, or "Unknown".
func (m Movie) CategoryName() string {
	if m.Category == nil {
		return unknownCategory
	}
	return m.Category.Name
}

// String renders the movie for listings.
func (m Movie) String() string {
	return fmt.Sprintf("%d - %s (%d) [%d mins, Category: %s]", m.ID, m.Name, m.Year, m.Minutes, m.CategoryName())
}
