// Command rosterpass converts institutional student-roster exports into a
// delimited file ready for bulk import into the directory system, with a
// freshly generated word passphrase per person.
package main

import (
	"os"

	"github.com/custodia-labs/rosterpass-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/rosterpass-cli/internal/adapters/driven/output/csvout"
	"github.com/custodia-labs/rosterpass-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/rosterpass-cli/internal/core/domain"
	"github.com/custodia-labs/rosterpass-cli/internal/core/ports/driving"
	"github.com/custodia-labs/rosterpass-cli/internal/core/services"
	"github.com/custodia-labs/rosterpass-cli/internal/logger"
	"github.com/custodia-labs/rosterpass-cli/internal/passphrase"
	"github.com/custodia-labs/rosterpass-cli/internal/readers"
)

func main() {
	factory := readers.NewFactory()
	writer := csvout.New()

	cli.SetProfileLoader(func(path string) (*domain.Profile, error) {
		return file.NewProfileStore(path).Load()
	})

	cli.SetPipelineBuilder(func(profile domain.Profile, log *logger.Logger) (driving.Pipeline, error) {
		gen, err := passphrase.NewGenerator(passphrase.DefaultCorpus(), profile.WordCount, profile.Separator)
		if err != nil {
			return nil, err
		}
		normalizer := services.NewNormalizer(gen, profile.GradePrefixes)
		return services.NewPipeline(factory, writer, normalizer, log), nil
	})

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
