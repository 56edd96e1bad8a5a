package cli

import (
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rshade/emetricx/internal/carbon"
	"github.com/rshade/emetricx/internal/config"
	"github.com/rshade/emetricx/internal/storage"
	"github.com/rshade/emetricx/internal/wizard"
)

// activityFlags binds one float flag per activity in the factor table.
type activityFlags struct {
	values map[string]*float64
}

// bindActivityFlags registers --electricity, --transport, --fuel, --waste and
// --coal-transport on fs.
func bindActivityFlags(fs *pflag.FlagSet) *activityFlags {
	a := &activityFlags{values: make(map[string]*float64, len(carbon.EmissionFactors))}
	for _, f := range carbon.EmissionFactors {
		a.values[f.Key] = fs.Float64(flagName(f.Key), 0, f.Label+" ("+f.Unit+")")
	}
	return a
}

// Inputs returns the flag values as activity inputs.
func (a *activityFlags) Inputs() carbon.ActivityInputs {
	inputs := carbon.NewActivityInputs()
	for k, v := range a.values {
		inputs[k] = *v
	}
	return inputs
}

// offsetFlags binds one float flag per offset kind.
type offsetFlags struct {
	values map[string]*float64
}

func bindOffsetFlags(fs *pflag.FlagSet) *offsetFlags {
	o := &offsetFlags{values: make(map[string]*float64, len(carbon.OffsetKinds))}
	for _, k := range carbon.OffsetKinds {
		o.values[k.Key] = fs.Float64(flagName(k.Key), 0, k.Label+" (t CO2e)")
	}
	return o
}

// Offsets returns the flag values as offset inputs.
func (o *offsetFlags) Offsets() carbon.OffsetInputs {
	offsets := carbon.NewOffsetInputs()
	for k, v := range o.values {
		offsets[k] = *v
	}
	return offsets
}

// flagName turns a camelCase input key into a kebab-case flag name.
func flagName(key string) string {
	var sb strings.Builder
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			sb.WriteByte('-')
			sb.WriteRune(r + ('a' - 'A'))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// warnNegative logs flags whose negative values will be treated as zero.
func warnNegative(values map[string]float64) {
	for k, v := range values {
		if v < 0 {
			logger.Warn().Str("input", k).Float64("value", v).Msg("negative quantity treated as zero")
		}
	}
}

// categoryInputs zeroes Mining-only activities when an explicit category does
// not report them. An unset category leaves inputs untouched.
func categoryInputs(c carbon.Category, inputs carbon.ActivityInputs) carbon.ActivityInputs {
	if c == carbon.CategoryNone {
		return inputs
	}
	out := inputs.Clone()
	for _, f := range carbon.EmissionFactors {
		if f.MiningOnly && !c.IncludesMiningActivities() && out.Get(f.Key) != 0 {
			logger.Warn().Str("input", f.Key).Str("category", string(c)).Msg("input ignored for category")
			out[f.Key] = 0
		}
	}
	return out
}

// parseCategoryFlag resolves --category; empty means unset.
func parseCategoryFlag(value string) (carbon.Category, error) {
	if strings.TrimSpace(value) == "" {
		return carbon.CategoryNone, nil
	}
	c, err := carbon.ParseCategory(value)
	if err != nil {
		return carbon.CategoryNone, &UsageError{Err: err}
	}
	return c, nil
}

// resolveOutputFormat returns the --output value or the configured default.
func resolveOutputFormat(value string) (string, error) {
	if value == "" {
		value = config.GetDefaultOutputFormat()
	}
	switch value {
	case config.FormatText, config.FormatJSON:
		return value, nil
	default:
		return "", usageErrorf("unsupported output format %q (use text or json)", value)
	}
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// openStore returns the store backing wizard state for this invocation.
// An unusable state directory degrades to in-memory state.
func openStore(cmd *cobra.Command) wizard.Store {
	if ephemeral, _ := cmd.Flags().GetBool("ephemeral"); ephemeral {
		return wizard.NewMemoryStore()
	}

	dir := config.GetGlobalConfig().Storage.Directory
	if flagDir, _ := cmd.Flags().GetString("state-dir"); flagDir != "" {
		dir = flagDir
	}

	store, err := storage.NewFileStore(dir)
	if err != nil {
		logger.Warn().Err(err).Str("dir", dir).Msg("state directory unavailable, keeping state in memory")
		return wizard.NewMemoryStore()
	}
	logger.Debug().Str("dir", store.Directory()).Msg("using file state store")
	return store
}

// statePath returns the file backing the wizard state, or "" for in-memory state.
func statePath(store wizard.Store) string {
	if fileStore, ok := store.(*storage.FileStore); ok {
		return fileStore.Path(config.GetGlobalConfig().Storage.Key)
	}
	return ""
}

// openSession opens and restores the wizard session.
func openSession(cmd *cobra.Command) *wizard.Session {
	session, _ := openSessionWithStore(cmd)
	return session
}

// openSessionWithStore is openSession that also returns the backing store.
func openSessionWithStore(cmd *cobra.Command) (*wizard.Session, wizard.Store) {
	store := openStore(cmd)
	session := wizard.NewSession(store,
		wizard.WithKey(config.GetGlobalConfig().Storage.Key),
		wizard.WithLogger(logger),
	)
	session.Restore(cmd.Context())
	return session, store
}
