package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/raine/amazon-feed-normalizer/internal/amazon"
)

// extract-asin prints the ASIN for each Amazon URL given as an argument, or
// read from stdin when no arguments are given. URLs without a recognizable
// product path print "-". Exits non-zero if nothing resolved.
func main() {
	urls := os.Args[1:]

	if len(urls) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			urls = append(urls, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
	}

	if len(urls) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: extract-asin <url> [url...]\n")
		fmt.Fprintf(os.Stderr, "       extract-asin < urls.txt\n")
		os.Exit(1)
	}

	resolved := 0
	for _, url := range urls {
		asin, ok := amazon.ExtractASIN(url)
		if !ok {
			fmt.Println("-")
			continue
		}
		fmt.Println(asin)
		resolved++
	}

	if resolved == 0 {
		os.Exit(1)
	}
}
