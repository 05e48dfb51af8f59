package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/martinlehoux/kuuid"
	"github.com/martinlehoux/kuuid/kb64"
	"github.com/martinlehoux/kuuid/kcore"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"
)

var generate int
var from string
var to string

func initConfig() {
	pflag.Int("generate", 0, "Emit this many fresh IDs instead of converting")
	pflag.String("from", "auto", "Input form (hex, b64, auto)")
	pflag.String("to", "b64", "Output form (hex, b64)")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigName(".kuuid")
	viper.AddConfigPath(".")
	kcore.Expect(viper.BindPFlags(pflag.CommandLine), "Error binding flags")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			kcore.Expect(err, "Error reading config file")
		}
	}

	generate = viper.GetInt("generate")
	from = viper.GetString("from")
	to = viper.GetString("to")
	kcore.Assert(from == "hex" || from == "b64" || from == "auto", "wrong from value (hex, b64, auto)")
	kcore.Assert(to == "hex" || to == "b64", "wrong to value (hex, b64)")
}

func main() {
	initConfig()

	if generate > 0 {
		for range generate {
			fmt.Println(render(kuuid.New()))
		}
		return
	}

	if args := pflag.Args(); len(args) > 0 {
		converted := lo.Map(args, func(arg string, index int) string {
			id, err := parse(arg)
			kcore.Expect(err, "Error parsing "+arg)
			return render(id)
		})
		fmt.Println(strings.Join(converted, "\n"))
		return
	}

	if failed := convertStream(os.Stdin); failed > 0 {
		os.Exit(1)
	}
}

func parse(value string) (kuuid.ID, error) {
	if from == "b64" || (from == "auto" && len(value) == kb64.EncodedLen) {
		return kuuid.Parse(value)
	}
	id, err := uuid.FromString(value)
	if err != nil {
		return kuuid.Nil, kcore.Wrap(err, "error parsing canonical uuid")
	}
	return kuuid.From(id), nil
}

func render(id kuuid.ID) string {
	if to == "hex" {
		return id.UUID().String()
	}
	return id.String()
}

func convertStream(input *os.File) int {
	progress := progressbar.Default(-1, "Converting")
	scanner := bufio.NewScanner(input)
	failed := 0
	for scanner.Scan() {
		kcore.Expect(progress.Add(1), "Error incrementing progress")
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		id, err := parse(line)
		if err != nil {
			slog.Warn("Error parsing line", "line", line, "err", err)
			failed++
			continue
		}
		fmt.Println(render(id))
	}
	kcore.Expect(scanner.Err(), "Error reading input")
	return failed
}
