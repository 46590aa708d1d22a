package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/skikozou/uniaz"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	app := &cli.App{
		Name:  "uniaz",
		Usage: "unify arbitrary Unicode text into a small fixed alphabet",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "alphabet",
				Value: uniaz.DefaultSymbols,
				Usage: "cipher alphabet (ordered, distinct symbols)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "encrypt",
				Usage:     "encrypt text to alphabet tokens",
				ArgsUsage: "<text>",
				Action:    encrypt,
			},
			{
				Name:      "decrypt",
				Usage:     "decrypt space-separated alphabet tokens",
				ArgsUsage: "<tokens>",
				Action:    decrypt,
			},
		},
		// No subcommand: interactive mode, encrypting one line at a time.
		Action: interactive,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func newCodec(c *cli.Context) (*uniaz.Codec, error) {
	alphabet, err := uniaz.NewAlphabet(c.String("alphabet"))
	if err != nil {
		return nil, err
	}
	return uniaz.NewWithAlphabet(alphabet), nil
}

func encrypt(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("usage: uniaz encrypt <text>", 1)
	}
	codec, err := newCodec(c)
	if err != nil {
		return err
	}
	fmt.Println(codec.EncryptString(strings.Join(c.Args().Slice(), " ")))
	return nil
}

func decrypt(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("usage: uniaz decrypt <tokens>", 1)
	}
	codec, err := newCodec(c)
	if err != nil {
		return err
	}
	plain, err := codec.DecryptString(strings.Join(c.Args().Slice(), " "))
	if err != nil {
		return err
	}
	fmt.Println(plain)
	return nil
}

func interactive(c *cli.Context) error {
	codec, err := newCodec(c)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			break
		}
		fmt.Println(codec.EncryptString(text))
	}
	return scanner.Err()
}
