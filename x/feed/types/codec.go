package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/proto"
)

// RegisterLegacyAminoCodec registers the necessary x/feed interfaces and concrete types
// on the provided LegacyAmino codec. These types are used for Amino JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateFeed{}, "paw/feed/MsgCreateFeed", nil)
	cdc.RegisterConcrete(&MsgSubmit{}, "paw/feed/MsgSubmit", nil)
	cdc.RegisterConcrete(&MsgChangeOracles{}, "paw/feed/MsgChangeOracles", nil)
	cdc.RegisterConcrete(&MsgUpdateFutureRounds{}, "paw/feed/MsgUpdateFutureRounds", nil)
	cdc.RegisterConcrete(&MsgSetPruningWindow{}, "paw/feed/MsgSetPruningWindow", nil)
	cdc.RegisterConcrete(&MsgTransferOwnership{}, "paw/feed/MsgTransferOwnership", nil)
	cdc.RegisterConcrete(&MsgAcceptOwnership{}, "paw/feed/MsgAcceptOwnership", nil)
	cdc.RegisterConcrete(&MsgSetRequester{}, "paw/feed/MsgSetRequester", nil)
	cdc.RegisterConcrete(&MsgRemoveRequester{}, "paw/feed/MsgRemoveRequester", nil)
	cdc.RegisterConcrete(&MsgRequestNewRound{}, "paw/feed/MsgRequestNewRound", nil)
	cdc.RegisterConcrete(&MsgWithdrawPayment{}, "paw/feed/MsgWithdrawPayment", nil)
	cdc.RegisterConcrete(&MsgTransferAdmin{}, "paw/feed/MsgTransferAdmin", nil)
	cdc.RegisterConcrete(&MsgAcceptAdmin{}, "paw/feed/MsgAcceptAdmin", nil)
	cdc.RegisterConcrete(&MsgWithdrawFunds{}, "paw/feed/MsgWithdrawFunds", nil)
	cdc.RegisterConcrete(&MsgReduceDebt{}, "paw/feed/MsgReduceDebt", nil)
	cdc.RegisterConcrete(&MsgTransferModuleAdmin{}, "paw/feed/MsgTransferModuleAdmin", nil)
	cdc.RegisterConcrete(&MsgAcceptModuleAdmin{}, "paw/feed/MsgAcceptModuleAdmin", nil)
	cdc.RegisterConcrete(&MsgSetFeedCreator{}, "paw/feed/MsgSetFeedCreator", nil)
	cdc.RegisterConcrete(&MsgRemoveFeedCreator{}, "paw/feed/MsgRemoveFeedCreator", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "paw/feed/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the x/feed interfaces types with the interface registry
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateFeed{},
		&MsgSubmit{},
		&MsgChangeOracles{},
		&MsgUpdateFutureRounds{},
		&MsgSetPruningWindow{},
		&MsgTransferOwnership{},
		&MsgAcceptOwnership{},
		&MsgSetRequester{},
		&MsgRemoveRequester{},
		&MsgRequestNewRound{},
		&MsgWithdrawPayment{},
		&MsgTransferAdmin{},
		&MsgAcceptAdmin{},
		&MsgWithdrawFunds{},
		&MsgReduceDebt{},
		&MsgTransferModuleAdmin{},
		&MsgAcceptModuleAdmin{},
		&MsgSetFeedCreator{},
		&MsgRemoveFeedCreator{},
		&MsgUpdateParams{},
	)
}

var (
	amino = codec.NewLegacyAmino()
	// ModuleCdc references the global x/feed module codec
	ModuleCdc = codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
)

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()

	// The module ships without generated protobuf code, so the message types
	// are registered with the gogoproto registry here to make their type URLs
	// resolvable.
	proto.RegisterType((*MsgCreateFeed)(nil), "paw.feed.v1.MsgCreateFeed")
	proto.RegisterType((*MsgSubmit)(nil), "paw.feed.v1.MsgSubmit")
	proto.RegisterType((*MsgChangeOracles)(nil), "paw.feed.v1.MsgChangeOracles")
	proto.RegisterType((*MsgUpdateFutureRounds)(nil), "paw.feed.v1.MsgUpdateFutureRounds")
	proto.RegisterType((*MsgSetPruningWindow)(nil), "paw.feed.v1.MsgSetPruningWindow")
	proto.RegisterType((*MsgTransferOwnership)(nil), "paw.feed.v1.MsgTransferOwnership")
	proto.RegisterType((*MsgAcceptOwnership)(nil), "paw.feed.v1.MsgAcceptOwnership")
	proto.RegisterType((*MsgSetRequester)(nil), "paw.feed.v1.MsgSetRequester")
	proto.RegisterType((*MsgRemoveRequester)(nil), "paw.feed.v1.MsgRemoveRequester")
	proto.RegisterType((*MsgRequestNewRound)(nil), "paw.feed.v1.MsgRequestNewRound")
	proto.RegisterType((*MsgWithdrawPayment)(nil), "paw.feed.v1.MsgWithdrawPayment")
	proto.RegisterType((*MsgTransferAdmin)(nil), "paw.feed.v1.MsgTransferAdmin")
	proto.RegisterType((*MsgAcceptAdmin)(nil), "paw.feed.v1.MsgAcceptAdmin")
	proto.RegisterType((*MsgWithdrawFunds)(nil), "paw.feed.v1.MsgWithdrawFunds")
	proto.RegisterType((*MsgReduceDebt)(nil), "paw.feed.v1.MsgReduceDebt")
	proto.RegisterType((*MsgTransferModuleAdmin)(nil), "paw.feed.v1.MsgTransferModuleAdmin")
	proto.RegisterType((*MsgAcceptModuleAdmin)(nil), "paw.feed.v1.MsgAcceptModuleAdmin")
	proto.RegisterType((*MsgSetFeedCreator)(nil), "paw.feed.v1.MsgSetFeedCreator")
	proto.RegisterType((*MsgRemoveFeedCreator)(nil), "paw.feed.v1.MsgRemoveFeedCreator")
	proto.RegisterType((*MsgUpdateParams)(nil), "paw.feed.v1.MsgUpdateParams")
}
