package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/update-template/pkg/cli/config"
	"github.com/m-mizutani/update-template/pkg/domain/types"
)

func TestUpdaterInput(t *testing.T) {
	unsetEnv(t,
		"UPDATE_TEMPLATE_CRUFT_PATH",
		"UPDATE_TEMPLATE_MAINTAINER_FIELD",
		"UPDATE_TEMPLATE_GIT_AUTHOR_NAME",
		"UPDATE_TEMPLATE_GIT_AUTHOR_EMAIL",
	)

	t.Run("defaults", func(t *testing.T) {
		var updater config.Updater
		parseFlags(t, updater.Flags())

		input := updater.Input("test-org")
		gt.V(t, input.Owner).Equal("test-org")
		gt.V(t, input.Fields()).Equal([]types.MaintainerField{types.DefaultMaintainerField})
		gt.V(t, input.Author.Name).Equal("update-template")
		gt.V(t, input.Author.Email).Equal("update-template@users.noreply.github.com")
		gt.NoError(t, input.Validate())
	})

	t.Run("maintainer fields keep their order", func(t *testing.T) {
		var updater config.Updater
		parseFlags(t, updater.Flags(),
			"--maintainer-field", "maintainer",
			"--maintainer-field", "full_name",
			"--git-author-name", "bot",
			"--git-author-email", "bot@example.com",
		)

		input := updater.Input("test-org")
		gt.V(t, input.Fields()).Equal([]types.MaintainerField{"maintainer", "full_name"})
		gt.V(t, input.Author.Name).Equal("bot")
		gt.V(t, input.Author.Email).Equal("bot@example.com")
	})
}
