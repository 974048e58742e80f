package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/isabella232/sdc-napi/pkg/types"
)

func parseVlanID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid vlan id '%s'", s)
	}
	return id, nil
}

// fabricCmd represents the fabric command group
var fabricCmd = &cobra.Command{
	Use:   "fabric",
	Short: "Inspect the fabric overlays of an owner",
}

var fabricVlansCmd = &cobra.Command{
	Use:   "vlans",
	Short: "List the fabric VLANs of an owner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cl, err := newClient(cmd)
		if err != nil {
			return err
		}

		limit := types.DefaultLimit()
		limit.RetCount = true

		vlans, total, err := cl.VLANs(context.Background(), args[0], types.VLANFilter{}, limit)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.AppendHeader(table.Row{"VLAN", "Name", "Vnet", "Description"})
		for _, vlan := range vlans {
			t.AppendRow([]interface{}{
				vlan.VlanID,
				vlan.Name,
				vlan.VnetID,
				vlan.Description,
			})
		}
		t.SetStyle(table.StyleLight)

		fmt.Println(t.Render())
		log.Info().Msgf("showing %d of %d vlans", len(vlans), total)
		return nil
	},
}

var fabricNetworksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List the networks on a fabric VLAN of an owner",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cl, err := newClient(cmd)
		if err != nil {
			return err
		}

		vlanID, err := parseVlanID(args[1])
		if err != nil {
			return err
		}

		limit := types.DefaultLimit()
		limit.RetCount = true

		networks, total, err := cl.FabricNetworks(context.Background(), args[0], vlanID, limit)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.AppendHeader(table.Row{"UUID", "Name", "Subnet", "Gateway", "Vnet"})
		for _, network := range networks {
			t.AppendRow([]interface{}{
				network.UUID,
				network.Name,
				network.Subnet,
				network.Gateway,
				network.VnetID,
			})
		}
		t.SetStyle(table.StyleLight)

		fmt.Println(t.Render())
		log.Info().Msgf("showing %d of %d networks", len(networks), total)
		return nil
	},
}
