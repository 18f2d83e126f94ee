package session

// SessionUser is the public view of an authenticated roster user. It carries
// everything the directory knows about the user except the password.
type SessionUser struct {
	Id      string
	Name    string
	Color   string
	IsAdmin bool
}

// CanManage reports whether the user may edit or delete an event created by
// createdBy: admins manage everything, everyone else only their own events.
func (u SessionUser) CanManage(createdBy string) bool {
	return u.IsAdmin || u.Id == createdBy
}
