package entities

// Document представляет весь сохраняемый документ хранилища.
type Document struct {
	Users []User `json:"users"`
}

// NewDocument создает пустой документ.
func NewDocument() *Document {
	return &Document{Users: []User{}}
}

// FindUser находит пользователя по имени. Возвращает nil, если не найден.
func (d *Document) FindUser(username string) *User {
	for i := range d.Users {
		if d.Users[i].Username == username {
			return &d.Users[i]
		}
	}
	return nil
}

// HasUser проверяет существование пользователя с заданным именем.
func (d *Document) HasUser(username string) bool {
	return d.FindUser(username) != nil
}
