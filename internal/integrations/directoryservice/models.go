package directoryservice

// Business модель бизнеса из DirectoryService
type Business struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	ManagerIDs []int64    `json:"manager_ids"`
	Locations  []Location `json:"locations"`
	Staff      []Staff    `json:"staff"`
}

// Location точка обслуживания бизнеса
type Location struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Staff мастер бизнеса
type Staff struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// ErrorResponse модель ошибки от DirectoryService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HasLocation проверяет, что точка принадлежит бизнесу
func (b *Business) HasLocation(locationID int64) bool {
	for _, loc := range b.Locations {
		if loc.ID == locationID {
			return true
		}
	}
	return false
}

// HasManager проверяет, что пользователь является менеджером бизнеса
func (b *Business) HasManager(userID int64) bool {
	for _, id := range b.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// StaffByID возвращает мастера по ID или nil
func (b *Business) StaffByID(staffID int64) *Staff {
	for i := range b.Staff {
		if b.Staff[i].ID == staffID {
			return &b.Staff[i]
		}
	}
	return nil
}
