package types

// EntityID — уникальный идентификатор сущности в пределах матча
type EntityID uint64
