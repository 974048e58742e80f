package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/isabella232/sdc-napi/pkg/types"
)

// networkCmd represents the network command group
var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Inspect and manage logical networks",
}

var networkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the networks the server knows about",
	RunE: func(cmd *cobra.Command, args []string) error {
		cl, err := newClient(cmd)
		if err != nil {
			return err
		}

		var filter types.NetworkFilter
		nicTag, err := cmd.Flags().GetString("nic-tag")
		if err != nil {
			return fmt.Errorf("invalid nic tag input '%s' with error: %w", nicTag, err)
		}
		if nicTag != "" {
			filter.NicTag = []string{nicTag}
		}

		family, err := cmd.Flags().GetString("family")
		if err != nil {
			return fmt.Errorf("invalid family input '%s' with error: %w", family, err)
		}
		if family != "" {
			filter.Family = &family
		}

		fabric, err := cmd.Flags().GetBool("fabric")
		if err != nil {
			return fmt.Errorf("invalid fabric input '%v' with error: %w", fabric, err)
		}
		if fabric {
			filter.Fabric = &fabric
		}

		limit := types.DefaultLimit()
		limit.RetCount = true

		networks, total, err := cl.Networks(context.Background(), filter, limit)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.AppendHeader(table.Row{"UUID", "Name", "Subnet", "Family", "VLAN", "Nic tag", "Fabric"})
		for _, network := range networks {
			t.AppendRow([]interface{}{
				network.UUID,
				network.Name,
				network.Subnet,
				network.Family,
				network.VlanID,
				network.NicTag,
				network.Fabric,
			})
		}
		t.SetStyle(table.StyleLight)

		fmt.Println(t.Render())
		log.Info().Msgf("showing %d of %d networks", len(networks), total)
		return nil
	},
}

var networkGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Get one network by uuid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cl, err := newClient(cmd)
		if err != nil {
			return err
		}

		network, etag, err := cl.Network(context.Background(), args[0])
		if err != nil {
			return err
		}

		s, err := json.MarshalIndent(network, "", "\t")
		if err != nil {
			return err
		}
		log.Info().Str("etag", etag).Msg("network:\n" + string(s))
		return nil
	},
}

var networkDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a network by uuid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cl, err := newClient(cmd)
		if err != nil {
			return err
		}

		force, err := cmd.Flags().GetBool("force")
		if err != nil {
			return fmt.Errorf("invalid force input '%v' with error: %w", force, err)
		}

		etag, err := cmd.Flags().GetString("etag")
		if err != nil {
			return fmt.Errorf("invalid etag input '%s' with error: %w", etag, err)
		}

		if err := cl.DeleteNetwork(context.Background(), args[0], force, etag); err != nil {
			return err
		}

		log.Info().Str("uuid", args[0]).Msg("network deleted")
		return nil
	},
}
