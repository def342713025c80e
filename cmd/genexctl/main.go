package main

import "github.com/pablonunez10/genex-store-inventory-front/internal/cli"

func main() {
	cli.Execute()
}
