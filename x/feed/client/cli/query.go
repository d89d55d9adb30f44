package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/paw-chain/feed/x/feed/types"
)

// GetQueryCmd returns the query commands for the feed module
func GetQueryCmd() *cobra.Command {
	feedQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the feed module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	feedQueryCmd.AddCommand(
		CmdQueryParams(),
		CmdQueryFeed(),
		CmdQueryFeeds(),
		CmdQueryRoundData(),
		CmdQueryLatestRoundData(),
		CmdQueryOracle(),
		CmdQueryPool(),
	)

	return feedQueryCmd
}

// CmdQueryParams returns a CLI command handler for the module parameters
func CmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current feed module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.Params(cmd.Context(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryFeed returns a CLI command handler for a single feed config
func CmdQueryFeed() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed [feed-id]",
		Short: "Query the configuration of a feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			feedID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid feed id: %w", err)
			}

			res, err := queryClient.Feed(cmd.Context(), &types.QueryFeedRequest{FeedId: feedID})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryFeeds returns a CLI command handler listing all feeds
func CmdQueryFeeds() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feeds",
		Short: "Query all feed configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.Feeds(cmd.Context(), &types.QueryFeedsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryRoundData returns a CLI command handler for a specific round
func CmdQueryRoundData() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round-data [feed-id] [round-id]",
		Short: "Query the data of a specific feed round",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			feedID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid feed id: %w", err)
			}
			roundID, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid round id: %w", err)
			}

			res, err := queryClient.RoundData(cmd.Context(), &types.QueryRoundDataRequest{
				FeedId:  feedID,
				RoundId: roundID,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryLatestRoundData returns a CLI command handler for the latest round
func CmdQueryLatestRoundData() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "latest-round-data [feed-id]",
		Short: "Query the data of the latest feed round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			feedID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid feed id: %w", err)
			}

			res, err := queryClient.LatestRoundData(cmd.Context(), &types.QueryLatestRoundDataRequest{
				FeedId: feedID,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryOracle returns a CLI command handler for oracle metadata
func CmdQueryOracle() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oracle [address]",
		Short: "Query the metadata of an oracle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.Oracle(cmd.Context(), &types.QueryOracleRequest{Oracle: args[0]})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryPool returns a CLI command handler for the reward pool balances
func CmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Query the free and reserved reward pool balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.Pool(cmd.Context(), &types.QueryPoolRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
