package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/isabella232/sdc-napi/pkg/types"
)

// poolCmd represents the pool command group
var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Inspect network pools",
}

var poolListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the network pools the server knows about",
	RunE: func(cmd *cobra.Command, args []string) error {
		cl, err := newClient(cmd)
		if err != nil {
			return err
		}

		limit := types.DefaultLimit()
		limit.RetCount = true

		pools, total, err := cl.Pools(context.Background(), types.PoolFilter{}, limit)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.AppendHeader(table.Row{"UUID", "Name", "Family", "Networks", "Nic tags"})
		for _, pool := range pools {
			t.AppendRow([]interface{}{
				pool.UUID,
				pool.Name,
				pool.Family,
				len(pool.Networks),
				strings.Join(pool.NicTags, ","),
			})
		}
		t.SetStyle(table.StyleLight)

		fmt.Println(t.Render())
		log.Info().Msgf("showing %d of %d pools", len(pools), total)
		return nil
	},
}

var poolGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Get one network pool by uuid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cl, err := newClient(cmd)
		if err != nil {
			return err
		}

		pool, etag, err := cl.Pool(context.Background(), args[0])
		if err != nil {
			return err
		}

		s, err := json.MarshalIndent(pool, "", "\t")
		if err != nil {
			return err
		}
		log.Info().Str("etag", etag).Msg("pool:\n" + string(s))
		return nil
	},
}
