// Package policy decides whether an actor may perform an action on a
// resource. It is consulted by the transport middleware before a core
// operation is invoked; the services themselves never check permissions.
package policy

// Actions over the admin surface.
const (
	ActionView    = "view"
	ActionCreate  = "create"
	ActionProcess = "process"
	ActionReset   = "reset"
)

// Resources the admin surface exposes.
const (
	ResourceParticipants  = "participants"
	ResourceReassignments = "reassignments"
	ResourceUsers         = "users"
)

type rule struct {
	action   string
	resource string
}

var rolePermissions = map[string]map[rule]bool{
	"admin": {
		{ActionView, ResourceParticipants}:     true,
		{ActionCreate, ResourceParticipants}:   true,
		{ActionReset, ResourceParticipants}:    true,
		{ActionView, ResourceReassignments}:    true,
		{ActionProcess, ResourceReassignments}: true,
		{ActionCreate, ResourceUsers}:          true,
	},
	"staff": {
		{ActionView, ResourceParticipants}:     true,
		{ActionCreate, ResourceParticipants}:   true,
		{ActionView, ResourceReassignments}:    true,
		{ActionProcess, ResourceReassignments}: true,
	},
}

// Allow reports whether the actor role may perform action on resource.
// Unknown roles, actions, and resources all deny.
func Allow(role, action, resource string) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}

	return perms[rule{action, resource}]
}
