package components

import (
	"storebook/internal/infra/cache"
	"storebook/internal/infra/mq"
	"storebook/internal/infra/readstore"
	repo_impl "storebook/internal/infra/repository"
	"storebook/internal/pkg/config"
	"storebook/internal/usecase/commands"
	"storebook/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write-side repositories
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewStoreRepository,
			fx.As(new(commands.StoreRepository)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repo_impl.NewReviewRepository,
			fx.As(new(commands.ReviewRepository)),
		),
		// Read-side repositories for queries
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewStoreReadStore,
			fx.As(new(queries.StoreViewRepo)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewViewRepo)),
		),
		// Search cache and event publisher
		NewStoreSearchCache,
		fx.Annotate(
			func(c *cache.StoreSearchCache) *cache.StoreSearchCache { return c },
			fx.As(new(queries.SearchResultCache)),
			fx.As(new(commands.SearchCache)),
		),
		fx.Annotate(
			func(p *mq.Publisher) *mq.Publisher { return p },
			fx.As(new(commands.EventPublisher)),
		),
	),
)

func NewStoreSearchCache(client *redis.Client, cfg config.Config) *cache.StoreSearchCache {
	return cache.NewStoreSearchCache(client, cfg.Redis.SearchTTL)
}
