package commands

import (
	"context"
	"io"
	"strings"

	"gosolid/errors"
	"gosolid/patterns/retry"
	"gosolid/principles/dip"
	"gosolid/principles/isp"
	"gosolid/principles/lsp"
	"gosolid/principles/ocp"
	"gosolid/principles/srp"
)

type principle struct {
	name    string
	aliases []string
	title   string
	run     func(ctx context.Context, w io.Writer, env *environment) error
}

// principles 按 SOLID 顺序排列
var principles = []principle{
	{
		name:    "srp",
		aliases: []string{"single-responsibility"},
		title:   srp.Title,
		run: func(ctx context.Context, w io.Writer, env *environment) error {
			return srp.Run(ctx, w)
		},
	},
	{
		name:    "ocp",
		aliases: []string{"open-closed"},
		title:   ocp.Title,
		run: func(ctx context.Context, w io.Writer, env *environment) error {
			return ocp.Run(ctx, w)
		},
	},
	{
		name:    "lsp",
		aliases: []string{"liskov-substitution"},
		title:   lsp.Title,
		run: func(ctx context.Context, w io.Writer, env *environment) error {
			return lsp.Run(ctx, w)
		},
	},
	{
		name:    "isp",
		aliases: []string{"interface-segregation"},
		title:   isp.Title,
		run: func(ctx context.Context, w io.Writer, env *environment) error {
			if !env.cfg.Fax.Enabled {
				return isp.Run(ctx, w)
			}
			line, err := env.faxLine(ctx)
			if err != nil {
				return err
			}
			redial := retry.DefaultConfig()
			redial.MaxAttempts = env.cfg.Fax.RedialAttempts
			return isp.Run(ctx, w, isp.WithFax(line, isp.WithRedial(redial)))
		},
	},
	{
		name:    "dip",
		aliases: []string{"dependency-inversion"},
		title:   dip.Title,
		run: func(ctx context.Context, w io.Writer, env *environment) error {
			database, err := env.database()
			if err != nil {
				return err
			}
			if database == nil {
				return dip.Run(ctx, w)
			}
			return dip.Run(ctx, w, dip.WithDatabase(database))
		},
	},
}

func lookupPrinciple(name string) (principle, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range principles {
		if p.name == name {
			return p, true
		}
		for _, alias := range p.aliases {
			if alias == name {
				return p, true
			}
		}
	}
	return principle{}, false
}

// selectPrinciples 解析参数，"all" 展开为全部；重复项只运行一次
func selectPrinciples(args []string) ([]principle, error) {
	var (
		selected []principle
		seen     = make(map[string]bool)
	)
	for _, arg := range args {
		if strings.EqualFold(arg, "all") {
			for _, p := range principles {
				if !seen[p.name] {
					seen[p.name] = true
					selected = append(selected, p)
				}
			}
			continue
		}
		p, ok := lookupPrinciple(arg)
		if !ok {
			return nil, errors.ErrNotFound.WithContext("principle", arg)
		}
		if !seen[p.name] {
			seen[p.name] = true
			selected = append(selected, p)
		}
	}
	return selected, nil
}
