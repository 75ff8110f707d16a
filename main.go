package main

import (
	"fmt"
	"os"

	"github.com/tim-hardcastle/indexkit/source/hub"
	"github.com/tim-hardcastle/indexkit/source/repl"
	"github.com/tim-hardcastle/indexkit/source/settings"
	"github.com/tim-hardcastle/indexkit/source/text"
)

func main() {
	cfg, err := settings.LoadConfigFromEnv()
	if err != nil {
		fmt.Println(text.Red("Error") + ": " + err.Error())
	}
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-v", "--version":
			fmt.Println(text.VERSION)
			return
		case "-h", "--help":
			fmt.Print(text.HELP)
			return
		case "run":
			if len(os.Args) != 3 {
				fmt.Print(text.HELP)
				os.Exit(2)
			}
			os.Exit(runFile(os.Args[2], cfg))
		default:
			fmt.Print(text.HELP)
			os.Exit(2)
		}
	}
	fmt.Print(text.Logo())
	hb := hub.New(os.Stdin, os.Stdout, cfg)
	defer hb.Close()
	repl.Start(hb)
}

func runFile(path string, cfg settings.Config) int {
	file, err := os.Open(path)
	if err != nil {
		fmt.Println(text.Red("Error") + ": " + err.Error())
		return 1
	}
	defer file.Close()
	hb := hub.New(file, os.Stdout, cfg)
	defer hb.Close()
	if err := hb.Run(); err != nil {
		hb.WriteError(err.Error())
		return 1
	}
	return 0
}
