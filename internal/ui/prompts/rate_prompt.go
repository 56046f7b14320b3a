package prompts

import (
	"github.com/charmbracelet/huh"

	"github.com/zerah-labs/zerah/internal/model"
)

// PromptRatePair asks for the conversion pair when the rate command is
// run without arguments.
func PromptRatePair(defaultFrom, defaultTo string) (string, string, error) {
	options := make([]huh.Option[string], 0, len(model.ConvertCurrencies()))
	for _, c := range model.ConvertCurrencies() {
		options = append(options, huh.NewOption(c.Code+"  "+c.Label, c.Code))
	}

	from := defaultFrom
	err := huh.NewSelect[string]().
		Title("Convert from:").
		Options(options...).
		Value(&from).
		Run()
	if err != nil {
		return "", "", err
	}

	to := defaultTo
	err = huh.NewSelect[string]().
		Title("Convert to:").
		Options(options...).
		Value(&to).
		Run()
	if err != nil {
		return "", "", err
	}

	return from, to, nil
}
