package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalln("expected 'start' subcommand")
	}

	switch os.Args[1] {
	case "start":
		err := start()
		if err != nil {
			log.Fatalln(err)
		}
	default:
		log.Fatalln("expected 'start' subcommand")
	}
}
