package systems

import (
	"log"

	"github.com/decker502/turtlerace/pkg/components"
	"github.com/decker502/turtlerace/pkg/config"
	"github.com/decker502/turtlerace/pkg/ecs"
	"github.com/decker502/turtlerace/pkg/entities"
	"github.com/decker502/turtlerace/pkg/game"
)

// RacerSpawnSystem 选手生成系统
// 启动时和每次重开时调用 Spawn，保证场上恰好有 config.Lanes 名选手
type RacerSpawnSystem struct {
	entityManager *ecs.EntityManager
	raceConfig    *config.RaceConfig
}

// NewRacerSpawnSystem 创建选手生成系统
func NewRacerSpawnSystem(em *ecs.EntityManager, cfg *config.RaceConfig) *RacerSpawnSystem {
	return &RacerSpawnSystem{
		entityManager: em,
		raceConfig:    cfg,
	}
}

// Spawn 销毁现有选手（连同名字标签），在每条赛道起点生成新选手
// 返回按赛道顺序排列的选手列表，同时写入 race.Racers
func (s *RacerSpawnSystem) Spawn(race *game.RaceState) []ecs.EntityID {
	removed := s.despawnAll()

	racers := make([]ecs.EntityID, 0, config.Lanes)
	for lane := 0; lane < config.Lanes; lane++ {
		racers = append(racers, entities.NewRacerEntity(s.entityManager, s.raceConfig, lane, race.StartX))
	}
	race.Racers = racers

	log.Printf("[RacerSpawnSystem] Spawned %d racers (removed %d)", len(racers), removed)
	return racers
}

// despawnAll 销毁所有选手和名字标签，立即生效
func (s *RacerSpawnSystem) despawnAll() int {
	existing := ecs.GetEntitiesWith1[*components.RacerComponent](s.entityManager)
	for _, id := range existing {
		if racer, ok := ecs.GetComponent[*components.RacerComponent](s.entityManager, id); ok {
			s.entityManager.DestroyEntity(racer.LabelEntity)
		}
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()
	return len(existing)
}
