// Package userrepo provides data transfer objects and mapping functions for
// user persistence. Uniqueness of email and username is enforced by database
// constraints, not by check-then-insert.
package userrepo

import (
	"github.com/google/uuid"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user aggregates.
// Version backs the optimistic concurrency check on updates.
type UserDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Username              string     `gorm:"uniqueIndex"`
	Email                 string     `gorm:"uniqueIndex"`
	PasswordHash          string     `gorm:""`
	Role                  string     `gorm:"index"`
	EstimatedDeliveryTime int        `gorm:""`
	IsAvailable           bool       `gorm:""`
	CurrentOrderID        *uuid.UUID `gorm:"type:uuid;index"`
	Version               int        `gorm:""`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	var currentOrderID *uuid.UUID
	if id := aggregate.CurrentOrderID(); id != nil {
		raw := id.Bytes()
		currentOrderID = &raw
	}

	return UserDTO{
		ID:                    aggregate.ID().Bytes(),
		Username:              aggregate.Username(),
		Email:                 aggregate.Email(),
		PasswordHash:          aggregate.PasswordHash(),
		Role:                  aggregate.Role().String(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		IsAvailable:           aggregate.IsAvailable(),
		CurrentOrderID:        currentOrderID,
		Version:               aggregate.Version(),
	}
}

// toDomain converts a database DTO to a user domain aggregate using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	var currentOrderID *kernel.UUID
	if dto.CurrentOrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.CurrentOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		currentOrderID = &oID
	}

	return user.RestoreUser(
		id,
		dto.Username,
		dto.Email,
		dto.PasswordHash,
		role,
		dto.EstimatedDeliveryTime,
		dto.IsAvailable,
		currentOrderID,
		dto.Version,
	)
}
