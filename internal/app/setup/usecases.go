package setup

import (
	"fmt"

	orderusecase "github.com/LavaJover/shvark-deal-service/internal/usecase/order"
	voteusecase "github.com/LavaJover/shvark-deal-service/internal/usecase/vote"
)

type UseCases struct {
	OrderUsecase orderusecase.OrderUsecase
	VoteUsecase  voteusecase.VoteUsecase
}

func InitializeUseCases(deps *Dependencies) (*UseCases, error) {
	policy, err := voteusecase.PolicyByName(deps.Config.Votes.RepeatPolicy)
	if err != nil {
		return nil, fmt.Errorf("vote policy: %w", err)
	}

	orderUsecase := orderusecase.NewDefaultOrderUsecase(
		deps.Repositories.OrderRepo,
		deps.Repositories.RoleResolver,
		deps.EventPublisher(),
		deps.OrderMetrics,
		deps.Logger,
	)

	voteUsecase := voteusecase.NewDefaultVoteUsecase(
		deps.Repositories.VoteRepo,
		deps.Repositories.Subjects,
		deps.Repositories.Subjects,
		policy,
		deps.EventPublisher(),
		deps.VoteMetrics,
		deps.Logger,
	)

	return &UseCases{
		OrderUsecase: orderUsecase,
		VoteUsecase:  voteUsecase,
	}, nil
}
