// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/momeni/autorent/pkg/core/model"
	"github.com/spf13/cobra"
)

var catalogFlags struct {
	search   string
	brand    string
	features []string
	sort     string
	view     string
	page     int
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Run one catalog query and print its result as JSON",
	Long: `Run one catalog query against the configured inventory and
print the resulting page, pagination window, and filter count as JSON.
No session preferences are consulted or stored.`,
	RunE: queryCatalog,
	Args: cobra.NoArgs,
}

func queryCatalog(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	cs, err := c.Build(ctx)
	if err != nil {
		return fmt.Errorf("building components: %w", err)
	}
	defer cs.Close()
	uc, err := c.NewCatalogUseCase(cs.Inventory, cs.Sessions)
	if err != nil {
		return fmt.Errorf("creating catalog use case: %w", err)
	}
	f := &catalogFlags
	q := model.CatalogQuery{
		Search: f.search,
		Filters: model.FilterCriteria{
			Brand:    f.brand,
			Features: f.features,
		},
		Page: f.page,
	}
	if q.Sort, err = model.ParseSortKey(f.sort); err != nil {
		return fmt.Errorf("--sort %q: %w", f.sort, err)
	}
	if q.ViewMode, err = model.ParseViewMode(f.view); err != nil {
		return fmt.Errorf("--view %q: %w", f.view, err)
	}
	res, err := uc.Query(ctx, "", q)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func init() {
	fs := catalogCmd.Flags()
	fs.StringVar(&catalogFlags.search, "search", "", "search text")
	fs.StringVar(&catalogFlags.brand, "brand", "", "exact brand name")
	fs.StringSliceVar(
		&catalogFlags.features, "feature", nil, "required feature (repeatable)",
	)
	fs.StringVar(
		&catalogFlags.sort, "sort", "", "sort key, e.g. price-asc, name-asc",
	)
	fs.StringVar(&catalogFlags.view, "view", "", "grid or list")
	fs.IntVar(&catalogFlags.page, "page", 1, "page number")
	rootCmd.AddCommand(catalogCmd)
}
