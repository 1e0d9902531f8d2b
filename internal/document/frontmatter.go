package document

import (
	"bytes"
	"errors"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FrontMatter is the page metadata header. Layout and Title are required;
// any additional keys are retained in Raw for template authors.
type FrontMatter struct {
	Layout string
	Title  string
	Raw    map[string]any
}

type frontMatterEnvelope struct {
	Layout string         `yaml:"layout"`
	Title  string         `yaml:"title"`
	Custom map[string]any `yaml:",inline"`
}

// Validate enforces the required front-matter keys.
func (env frontMatterEnvelope) Validate() error {
	return validation.ValidateStruct(&env,
		validation.Field(&env.Layout, validation.Required.Error("layout key is required")),
		validation.Field(&env.Title, validation.Required.Error("title key is required")),
	)
}

// ParseFrontMatter extracts the metadata header and the markdown body from
// the provided source bytes. The header block is mandatory; a source without
// one fails with FrontMatterError.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var env frontMatterEnvelope

	body, err := frontmatter.MustParse(bytes.NewReader(source), &env)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return FrontMatter{}, nil, &FrontMatterError{
				Reason: "front matter block not found",
				Err:    ErrFrontMatterMissing,
			}
		}
		return FrontMatter{}, nil, &FrontMatterError{Reason: err.Error(), Err: err}
	}

	if err := env.Validate(); err != nil {
		return FrontMatter{}, nil, &FrontMatterError{Reason: err.Error(), Err: err}
	}

	return envelopeToFrontMatter(env), body, nil
}

func envelopeToFrontMatter(env frontMatterEnvelope) FrontMatter {
	raw := make(map[string]any, len(env.Custom)+2)
	for key, value := range env.Custom {
		raw[key] = value
	}
	raw["layout"] = env.Layout
	raw["title"] = env.Title

	return FrontMatter{
		Layout: env.Layout,
		Title:  env.Title,
		Raw:    raw,
	}
}
