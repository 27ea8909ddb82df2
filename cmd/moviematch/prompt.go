package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"moviematch/internal/catalog"
	"moviematch/internal/resolve"
	"moviematch/internal/services"
	"moviematch/internal/session"
)

// promptLine reads one trimmed line from the reader. An EOF on an empty line
// returns an empty string.
func promptLine(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprintf(out, "%s: ", label)
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// resolveEntry resolves a title against the catalog. When the title is
// ambiguous and no selection was given, it lists the candidates and prompts
// for a 1-based pick.
func resolveEntry(sess *session.Session, in *bufio.Reader, out io.Writer, title string, selection int) (catalog.Entry, error) {
	candidates, err := sess.Search(title)
	if err != nil {
		return catalog.Entry{}, err
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	if selection == 0 {
		fmt.Fprintf(out, "Multiple titles match %q:\n", title)
		fmt.Fprintln(out, renderEntryTable(candidates, true))
		answer, err := promptLine(in, out, "Select a number")
		if err != nil {
			return catalog.Entry{}, err
		}
		selection, err = strconv.Atoi(answer)
		if err != nil {
			return catalog.Entry{}, services.Wrap(services.ErrSelectionOutOfRange, "cli", "resolve", answer, nil)
		}
	}
	return resolve.Pick(candidates, selection)
}

func confirm(in *bufio.Reader, out io.Writer, label string) (bool, error) {
	answer, err := promptLine(in, out, label+" [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
