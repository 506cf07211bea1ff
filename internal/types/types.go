package types

// EntityID - уникальный идентификатор сущности в ECS.
// IDs are never reused within one world, so creation order equals ID order.
type EntityID uint64
