// Package process implements the resolve subcommand: load a theme, compile
// a stylesheet source and resolve every block for the configured target.
package process

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"restyle/common"
	"restyle/sheet"
	"restyle/state"
	"restyle/style"
	"restyle/theme"
)

// Run executes the resolve subcommand.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if cmd.NArg() < 2 {
		return fmt.Errorf("malformed command line, both THEME and STYLESHEET are required")
	}
	if cmd.NArg() > 3 {
		env.Log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[3:]))
	}

	th, err := theme.Load(cmd.Args().Get(0))
	if err != nil {
		return fmt.Errorf("unable to load theme: %w", err)
	}
	if env.Cfg.Resolve.RootMetric > 0 {
		th.RootMetric = env.Cfg.Resolve.RootMetric
	}

	data, err := os.ReadFile(cmd.Args().Get(1))
	if err != nil {
		return fmt.Errorf("unable to read stylesheet: %w", err)
	}

	compiled := sheet.NewCompiler(env.Log, env.Reg).Compile(data)
	for _, w := range compiled.Warnings {
		env.Log.Warn("Stylesheet compilation", zap.String("warning", w))
	}
	if len(compiled.Blocks) == 0 {
		return fmt.Errorf("stylesheet has no usable style blocks")
	}

	platform, viewport, err := target(cmd, env)
	if err != nil {
		return err
	}

	resolver := style.NewResolver(env.Log, env.Reg, style.WithPlatform(platform))
	for _, b := range compiled.Blocks {
		if _, err := resolver.Resolve(b.Object, th, viewport); err != nil {
			return fmt.Errorf("unable to resolve style block %q: %w", b.Name, err)
		}
	}
	env.Log.Info("Resolved stylesheet",
		zap.Int("blocks", len(compiled.Blocks)),
		zap.String("platform", platform.String()),
		zap.Float64("width", viewport.Width),
		zap.Float64("height", viewport.Height))

	format, ferr := common.ParseOutputFmt(cmd.String("format"))
	if ferr != nil {
		return ferr
	}
	out, err := serialize(compiled.Blocks, format)
	if err != nil {
		return err
	}

	dst := os.Stdout
	if fname := cmd.Args().Get(2); len(fname) > 0 {
		if dst, err = os.Create(fname); err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer func() {
			if er := dst.Close(); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to close destination file: %w", er))
			}
		}()
	}
	if _, err = dst.Write(out); err != nil {
		return fmt.Errorf("unable to write resolved styles: %w", err)
	}
	return nil
}

// target derives platform and viewport from configuration with command
// line overrides.
func target(cmd *cli.Command, env *state.LocalEnv) (common.Platform, style.Viewport, error) {
	name := env.Cfg.Resolve.Platform
	if cmd.IsSet("platform") {
		name = cmd.String("platform")
	}
	platform, err := common.ParsePlatform(name)
	if err != nil {
		return 0, style.Viewport{}, err
	}

	vp := style.Viewport{
		Width:  env.Cfg.Resolve.Viewport.Width,
		Height: env.Cfg.Resolve.Viewport.Height,
	}
	if cmd.IsSet("width") {
		vp.Width = cmd.Float("width")
	}
	if cmd.IsSet("height") {
		vp.Height = cmd.Float("height")
	}
	return platform, vp, nil
}

// resolvedBlocks serializes blocks preserving both block and property order.
type resolvedBlocks []sheet.Block

func (r resolvedBlocks) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, b := range r {
		var key, val yaml.Node
		key.SetString(b.Name)
		if err := val.Encode(b.Object); err != nil {
			return nil, fmt.Errorf("unable to encode block %q: %w", b.Name, err)
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}

func serialize(blocks []sheet.Block, format common.OutputFmt) ([]byte, error) {
	switch format {
	case common.OutputFmtJson:
		var buf []byte
		buf = append(buf, '{')
		for i, b := range blocks {
			if i > 0 {
				buf = append(buf, ',')
			}
			obj, err := b.Object.MarshalJSON()
			if err != nil {
				return nil, fmt.Errorf("unable to encode block %q: %w", b.Name, err)
			}
			buf = append(buf, fmt.Sprintf("%q:", b.Name)...)
			buf = append(buf, obj...)
		}
		buf = append(buf, '}', '\n')
		return buf, nil
	default:
		return yaml.Marshal(resolvedBlocks(blocks))
	}
}
