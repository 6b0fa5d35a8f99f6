package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Playlist field limits enforced by YouTube
const (
	TitleLimit       = 150
	DescriptionLimit = 5000
)

// Prompter collects the post and playlist details from the terminal
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading answers from in and writing prompts to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ask prints a prompt and reads one line without its trailing newline
func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		// A final line without newline still counts as an answer
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// PostID asks for a tweet URL or ID and returns the numeric conversation ID.
// An answer without any ID yields "".
func (p *Prompter) PostID() (string, error) {
	answer, err := p.ask("Enter a tweet URL or ID: ")
	if err != nil {
		return "", err
	}
	return ParsePostID(answer), nil
}

// Title asks for the playlist title until a valid one is entered
func (p *Prompter) Title() (string, error) {
	return p.askValid("Enter a title for the playlist: ", ValidateTitle)
}

// Description asks for the optional playlist description until a valid one is entered
func (p *Prompter) Description() (string, error) {
	return p.askValid("Enter a description for the playlist (optional): ", ValidateDescription)
}

func (p *Prompter) askValid(prompt string, validate func(string) error) (string, error) {
	for {
		answer, err := p.ask(prompt)
		if err != nil {
			return "", err
		}
		if err := validate(answer); err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		return answer, nil
	}
}

// ValidateTitle checks that a title is present and within the YouTube limit
func ValidateTitle(title string) error {
	if title == "" {
		return errors.New("Title is required.")
	}
	return validateLength("title", title, TitleLimit)
}

// ValidateDescription checks that a description is within the YouTube limit
func ValidateDescription(description string) error {
	return validateLength("description", description, DescriptionLimit)
}

func validateLength(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return fmt.Errorf("%s must be within %d characters.", field, limit)
	}
	return nil
}
