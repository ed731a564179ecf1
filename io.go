package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

var (
	forceFlag = false
)

func openOutputFile(filename string, overwrite bool) (*os.File, error) {
	overwrite = overwrite || forceFlag
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(filename, flags, 0644)
	if err != nil {
		if os.IsExist(err) && !overwrite {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return nil, fmt.Errorf("%v, use --force to overwrite it", err)
			}
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Printf("File %v already exists, would you like to overwrite it? [y/N/a]: ", filename)
				line, _ := r.ReadString('\n')
				switch strings.ToLower(strings.TrimSpace(line)) {
				case "a":
					forceFlag = true
					fallthrough
				case "y":
					flags &= ^os.O_EXCL
					return os.OpenFile(filename, flags, 0644)
				case "n", "":
					return nil, err
				}
			}
		}
		return nil, err
	}
	return f, nil
}

// writeOutputFile creates filename and calls write with it. If write or
// closing the file fails, the partial file is left in place and reported
// as invalid.
func writeOutputFile(filename string, write func(f *os.File) error) error {
	return writeFile(filename, false, write)
}

// replaceOutputFile is like writeOutputFile, but always overwrites
// filename without asking.
func replaceOutputFile(filename string, write func(f *os.File) error) error {
	return writeFile(filename, true, write)
}

func writeFile(filename string, overwrite bool, write func(f *os.File) error) error {
	f, err := openOutputFile(filename, overwrite)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.WithField("file", filename).WithError(err).Error("output is incomplete and invalid")
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}
