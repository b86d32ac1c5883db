package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog/log"
)

// ErrNoInput is returned when the input ends before a prompt is answered.
var ErrNoInput = errors.New("input ended before all answers were read")

// Prompter asks questions on out and reads whitespace-separated answers from in.
// Rejected answers are reported and the question is asked again.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Prompter{
		scanner: scanner,
		out:     out,
	}
}

func (p *Prompter) next() (string, error) {
	if p.scanner.Scan() {
		return p.scanner.Text(), nil
	}
	if err := p.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return "", ErrNoInput
}

// Word prompts for a single token, re-asking until validate accepts it.
// A nil validate accepts anything.
func (p *Prompter) Word(prompt string, validate func(string) error) (string, error) {
	for {
		fmt.Fprint(p.out, prompt)
		word, err := p.next()
		if err != nil {
			return "", err
		}
		if validate == nil {
			return word, nil
		}
		if err := validate(word); err != nil {
			log.Warn().Err(err).Msgf("rejected answer %q", word)
			fmt.Fprintf(p.out, "Invalid answer: %v. Try again.\n", err)
			continue
		}
		return word, nil
	}
}

// Int prompts for an integer, re-asking on malformed numbers or until validate accepts it.
func (p *Prompter) Int(prompt string, validate func(int) error) (int, error) {
	for {
		word, err := p.Word(prompt, nil)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(word)
		if errors.Is(err, strconv.ErrRange) {
			log.Warn().Msgf("rejected out of range answer %q", word)
			fmt.Fprintf(p.out, "%s is too large. Try again.\n", word)
			continue
		}
		if err != nil {
			log.Warn().Msgf("rejected non-numeric answer %q", word)
			fmt.Fprintf(p.out, "%q is not a whole number. Try again.\n", word)
			continue
		}
		if validate != nil {
			if err := validate(n); err != nil {
				log.Warn().Err(err).Msgf("rejected answer %d", n)
				fmt.Fprintf(p.out, "Invalid answer: %v. Try again.\n", err)
				continue
			}
		}
		return n, nil
	}
}
