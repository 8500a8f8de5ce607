// Command hashpass prints a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"ruleta-server/internal/pkg/password"
)

func main() {
	cost := flag.Int("cost", password.DefaultCost, "bcrypt cost")
	flag.Parse()

	plain := flag.Arg(0)
	if plain == "" {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(os.Stderr, "usage: hashpass [-cost N] <password>  (or pipe it on stdin)")
			os.Exit(2)
		}
		plain = strings.TrimRight(line, "\r\n")
	}

	hash, err := password.HashPassword(plain, *cost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashpass:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
