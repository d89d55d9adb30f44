package cli

import (
	"fmt"
	"strconv"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/feed/x/feed/types"
)

// GetTxCmd returns the transaction commands for the feed module
func GetTxCmd() *cobra.Command {
	feedTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Feed transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	feedTxCmd.AddCommand(
		CmdCreateFeed(),
		CmdSubmit(),
		CmdRequestNewRound(),
		CmdWithdrawPayment(),
		CmdReduceDebt(),
		CmdTransferOwnership(),
		CmdAcceptOwnership(),
	)

	return feedTxCmd
}

// CmdCreateFeed returns a CLI command handler for creating a new feed
func CmdCreateFeed() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-feed [payment] [min-value] [max-value] [min-submissions]",
		Short: "Create a new oracle feed",
		Long: `Create a new oracle feed. The signer has to be a registered feed creator
and becomes the owner of the feed.

Oracles are passed as comma separated oracle:admin address pairs.

Example:
  $ pawd tx feed create-feed 10 0 1000000 2 \
      --oracles "paw1oracle1...:paw1admin1...,paw1oracle2...:paw1admin2..." \
      --timeout 10 --decimals 6 --description "ATOM/USD" --from creator-key`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			payment, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid payment amount: %s", args[0])
			}
			minValue, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid minimum value: %s", args[1])
			}
			maxValue, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid maximum value: %s", args[2])
			}
			minSubmissions, err := strconv.ParseUint(args[3], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid minimum submissions: %w", err)
			}

			timeout, err := cmd.Flags().GetInt64(FlagTimeout)
			if err != nil {
				return err
			}
			decimals, err := cmd.Flags().GetUint8(FlagDecimals)
			if err != nil {
				return err
			}
			description, err := cmd.Flags().GetString(FlagDescription)
			if err != nil {
				return err
			}
			restartDelay, err := cmd.Flags().GetUint64(FlagRestartDelay)
			if err != nil {
				return err
			}
			oraclesStr, err := cmd.Flags().GetString(FlagOracles)
			if err != nil {
				return err
			}
			oracles, err := parseOraclePairs(oraclesStr)
			if err != nil {
				return err
			}

			msg := &types.MsgCreateFeed{
				Owner:          clientCtx.GetFromAddress().String(),
				Payment:        payment,
				Timeout:        timeout,
				MinSubmissions: uint32(minSubmissions),
				Decimals:       decimals,
				Description:    description,
				RestartDelay:   restartDelay,
				Oracles:        oracles,
				SubmissionValueBounds: types.ValueBounds{
					Min: minValue,
					Max: maxValue,
				},
			}
			if cmd.Flags().Changed(FlagPruningWindow) {
				window, err := cmd.Flags().GetUint64(FlagPruningWindow)
				if err != nil {
					return err
				}
				msg.PruningWindow = &window
			}
			if cmd.Flags().Changed(FlagMaxDebt) {
				maxDebtStr, err := cmd.Flags().GetString(FlagMaxDebt)
				if err != nil {
					return err
				}
				maxDebt, ok := math.NewIntFromString(maxDebtStr)
				if !ok {
					return fmt.Errorf("invalid max debt: %s", maxDebtStr)
				}
				msg.MaxDebt = &maxDebt
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Int64(FlagTimeout, 0, "Round timeout in blocks, 0 disables timeouts")
	cmd.Flags().Uint8(FlagDecimals, 0, "Number of decimals the feed values are scaled with")
	cmd.Flags().String(FlagDescription, "", "Free-form description of the feed")
	cmd.Flags().Uint64(FlagRestartDelay, 0, "Rounds an oracle has to wait before starting another round")
	cmd.Flags().Uint64(FlagPruningWindow, 0, "Number of rounds to keep in storage, unlimited if not set")
	cmd.Flags().String(FlagMaxDebt, "", "Maximum debt the feed may accumulate, unlimited if not set")
	cmd.Flags().String(FlagOracles, "", "Comma separated oracle:admin address pairs")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSubmit returns a CLI command handler for submitting a feed value
func CmdSubmit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit [feed-id] [round-id] [value]",
		Short: "Submit a value for a feed round",
		Long: `Submit a new value to the given feed and round as an oracle.

Starts the round if it does not exist yet and the oracle is eligible to
start it.

Example:
  $ pawd tx feed submit 0 1 42000 --from oracle-key`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feedID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid feed id: %w", err)
			}
			roundID, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid round id: %w", err)
			}
			value, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid submission value: %s", args[2])
			}

			msg := types.NewMsgSubmit(clientCtx.GetFromAddress().String(), feedID, roundID, value)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRequestNewRound returns a CLI command handler for requesting a round
func CmdRequestNewRound() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request-new-round [feed-id]",
		Short: "Request the start of a new oracle round",
		Long: `Request the start of a new oracle round. The signer needs requester
permissions on the feed.

Example:
  $ pawd tx feed request-new-round 0 --from requester-key`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feedID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid feed id: %w", err)
			}

			msg := &types.MsgRequestNewRound{
				Requester: clientCtx.GetFromAddress().String(),
				FeedId:    feedID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawPayment returns a CLI command handler for withdrawing rewards
func CmdWithdrawPayment() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-payment [oracle] [recipient] [amount]",
		Short: "Withdraw accumulated oracle rewards to a recipient",
		Long: `Withdraw accumulated rewards of an oracle to a recipient. The signer
has to be the oracle admin.

Example:
  $ pawd tx feed withdraw-payment paw1oracle... paw1recipient... 1000 --from admin-key`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			if _, err := sdk.AccAddressFromBech32(args[0]); err != nil {
				return fmt.Errorf("invalid oracle address %s: %w", args[0], err)
			}
			if _, err := sdk.AccAddressFromBech32(args[1]); err != nil {
				return fmt.Errorf("invalid recipient address %s: %w", args[1], err)
			}
			amount, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[2])
			}

			msg := &types.MsgWithdrawPayment{
				Admin:     clientCtx.GetFromAddress().String(),
				Oracle:    args[0],
				Recipient: args[1],
				Amount:    amount,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdReduceDebt returns a CLI command handler for paying down feed debt
func CmdReduceDebt() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reduce-debt [feed-id] [amount]",
		Short: "Pay down a feed's accumulated reward debt",
		Long: `Move funds from the free reward pool into the reserve so oracles can be
paid out. Open to any account.

Example:
  $ pawd tx feed reduce-debt 0 5000 --from any-key`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feedID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid feed id: %w", err)
			}
			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[1])
			}

			msg := &types.MsgReduceDebt{
				Sender: clientCtx.GetFromAddress().String(),
				FeedId: feedID,
				Amount: amount,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdTransferOwnership returns a CLI command handler for transferring a feed
func CmdTransferOwnership() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer-ownership [feed-id] [new-owner]",
		Short: "Initiate the transfer of a feed to a new owner",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feedID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid feed id: %w", err)
			}
			if _, err := sdk.AccAddressFromBech32(args[1]); err != nil {
				return fmt.Errorf("invalid new owner address %s: %w", args[1], err)
			}

			msg := &types.MsgTransferOwnership{
				Owner:    clientCtx.GetFromAddress().String(),
				FeedId:   feedID,
				NewOwner: args[1],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAcceptOwnership returns a CLI command handler for accepting a feed
func CmdAcceptOwnership() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accept-ownership [feed-id]",
		Short: "Accept the transfer of feed ownership",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feedID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid feed id: %w", err)
			}

			msg := &types.MsgAcceptOwnership{
				NewOwner: clientCtx.GetFromAddress().String(),
				FeedId:   feedID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// parseOraclePairs parses comma separated oracle:admin address pairs.
func parseOraclePairs(s string) ([]types.OraclePair, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	pairs := make([]types.OraclePair, 0, len(parts))
	for _, part := range parts {
		oracleAdmin := strings.Split(strings.TrimSpace(part), ":")
		if len(oracleAdmin) != 2 {
			return nil, fmt.Errorf("invalid oracle pair %q, expected oracle:admin", part)
		}
		pairs = append(pairs, types.OraclePair{Oracle: oracleAdmin[0], Admin: oracleAdmin[1]})
	}
	return pairs, nil
}
