package grpcapi

import (
	"context"

	"github.com/LavaJover/shvark-deal-service/internal/domain"
	voteusecase "github.com/LavaJover/shvark-deal-service/internal/usecase/vote"
	"google.golang.org/protobuf/types/known/structpb"
)

// VoteHandler serves the ledger. The voting user is always the caller.
type VoteHandler struct {
	uc voteusecase.VoteUsecase
}

func NewVoteHandler(uc voteusecase.VoteUsecase) *VoteHandler {
	return &VoteHandler{uc: uc}
}

func (h *VoteHandler) GetUserVote(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	vote, found, err := h.uc.GetUserVote(ctx, stringField(r, "subject_id"), caller)
	if err != nil {
		return nil, toStatus(err)
	}
	fields := map[string]any{"has_vote": found}
	if found {
		fields["vote"] = voteFields(vote)
	}
	return newStruct(fields)
}

func (h *VoteHandler) Vote(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	isUpvote, err := boolField(r, "is_upvote")
	if err != nil {
		return nil, err
	}
	change, err := h.uc.Vote(ctx, stringField(r, "subject_id"), caller, isUpvote)
	if err != nil {
		return nil, toStatus(err)
	}
	return voteChangeResponse(change)
}

func (h *VoteHandler) RemoveVote(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	change, err := h.uc.RemoveVote(ctx, stringField(r, "subject_id"), caller)
	if err != nil {
		return nil, toStatus(err)
	}
	return voteChangeResponse(change)
}

func (h *VoteHandler) GetScore(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	score, err := h.uc.GetScore(ctx, stringField(r, "subject_id"))
	if err != nil {
		return nil, toStatus(err)
	}
	return scoreResponse(score)
}

func (h *VoteHandler) ReconcileScore(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	score, err := h.uc.ReconcileScore(ctx, stringField(r, "subject_id"))
	if err != nil {
		return nil, toStatus(err)
	}
	return scoreResponse(score)
}

func (h *VoteHandler) RegisterSubject(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	subject := domain.Subject{
		ID:   stringField(r, "subject_id"),
		Kind: domain.SubjectKind(stringField(r, "kind")),
	}
	if err := h.uc.RegisterSubject(ctx, subject); err != nil {
		return nil, toStatus(err)
	}
	return newStruct(map[string]any{"subject_id": subject.ID, "registered": true})
}
