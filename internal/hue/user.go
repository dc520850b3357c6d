package hue

import (
	"context"
	"encoding/json"
)

// collection holds the per-instance endpoints shared by every resource family.
type collection struct {
	url    string
	get    Endpoint
	set    Endpoint
	remove Endpoint
}

func newCollection(v verbs, root, name string) collection {
	url := Slash(root, name)
	object := ObjectURL(url)
	return collection{
		url:    url,
		get:    NewEndpoint(v.get.Request, object),
		set:    NewEndpoint(v.put.Request, object),
		remove: NewEndpoint(v.del.Request, object),
	}
}

// User is an authorised session on a bridge. All endpoints are bound when the
// User is created and never change afterwards, so a User can be shared freely.
type User struct {
	bridge   *Bridge
	username string
	url      string
	verbs    verbs

	infoURL   string
	configURL string

	lights    collection
	groups    collection
	schedules collection
	scenes    collection
	sensors   collection
	rules     collection

	lightState   Endpoint
	groupAction  Endpoint
	sensorConfig Endpoint
	sensorState  Endpoint
	whitelist    Endpoint
	sceneLights  URLFunc
}

func newUser(b *Bridge, username string) *User {
	v := b.verbs
	url := Slash(b.url, username)
	u := &User{
		bridge:    b,
		username:  username,
		url:       url,
		verbs:     v,
		infoURL:   Slash(url, "info"),
		configURL: Slash(url, "config"),
		lights:    newCollection(v, url, "lights"),
		groups:    newCollection(v, url, "groups"),
		schedules: newCollection(v, url, "schedules"),
		scenes:    newCollection(v, url, "scenes"),
		sensors:   newCollection(v, url, "sensors"),
		rules:     newCollection(v, url, "rules"),
	}

	u.lightState = NewEndpoint(v.put.Request, ObjectURL(u.lights.url, "state"))
	u.groupAction = NewEndpoint(v.put.Request, ObjectURL(u.groups.url, "action"))
	u.sensorConfig = NewEndpoint(v.put.Request, ObjectURL(u.sensors.url, "config"))
	u.sensorState = NewEndpoint(v.put.Request, ObjectURL(u.sensors.url, "state"))
	u.whitelist = NewEndpoint(v.del.Request, ObjectURL(Slash(u.configURL, "whitelist")))
	u.sceneLights = ObjectURL(u.scenes.url, "lights")

	return u
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Bridge() *Bridge {
	return u.bridge
}

// GetFullState returns the bridge's complete datastore in one response.
func (u *User) GetFullState(ctx context.Context) (json.RawMessage, error) {
	return u.verbs.get.Request(ctx, u.url, NoBody)
}

func (u *User) GetTimezones(ctx context.Context) (json.RawMessage, error) {
	return u.verbs.get.Request(ctx, Slash(u.infoURL, "timezones"), NoBody)
}

// config

func (u *User) GetConfig(ctx context.Context) (json.RawMessage, error) {
	return u.verbs.get.Request(ctx, u.configURL, NoBody)
}

func (u *User) SetConfig(ctx context.Context, data any) (json.RawMessage, error) {
	return u.verbs.put.Request(ctx, u.configURL, Body(data))
}

// DeleteUser removes username from the bridge whitelist.
func (u *User) DeleteUser(ctx context.Context, username string) (json.RawMessage, error) {
	return u.whitelist.Call(ctx, username, NoBody)
}

// DeleteSelf removes this session's own whitelist entry.
func (u *User) DeleteSelf(ctx context.Context) (json.RawMessage, error) {
	return u.DeleteUser(ctx, u.username)
}

// lights

func (u *User) GetLights(ctx context.Context) (json.RawMessage, error) {
	return u.verbs.get.Request(ctx, u.lights.url, NoBody)
}

// GetNewLights returns the lights found by the last search.
func (u *User) GetNewLights(ctx context.Context) (json.RawMessage, error) {
	return u.verbs.get.Request(ctx, Slash(u.lights.url, "new"), NoBody)
}

// SearchForNewLights starts a search. The payload may list device ids to look
// for; NoBody searches for any new light.
func (u *User) SearchForNewLights(ctx context.Context, payload Payload) (json.RawMessage, error) {
	return u.verbs.post.Request(ctx, u.lights.url, payload)
}

func (u *User) GetLight(ctx context.Context, id string) (json.RawMessage, error) {
	return u.lights.get.Call(ctx, id, NoBody)
}

// SetLight updates a light's attributes, e.g. its name.
func (u *User) SetLight(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return u.lights.set.Call(ctx, id, Body(data))
}

func (u *User) SetLightState(ctx context.Context, id string, state any) (json.RawMessage, error) {
	return u.lightState.Call(ctx, id, Body(state))
}

func (u *User) DeleteLight(ctx context.Context, id string) (json.RawMessage, error) {
	return u.lights.remove.Call(ctx, id, NoBody)
}

// groups

func (u *User) GetGroups(ctx context.Context) (json.RawMessage, error) {
	return u.verbs.get.Request(ctx, u.groups.url, NoBody)
}

func (u *User) CreateGroup(ctx context.Context, data any) (json.RawMessage, error) {
	return u.verbs.post.Request(ctx, u.groups.url, Body(data))
}

func (u *User) GetGroup(ctx context.Context, id string) (json.RawMessage, error) {
	return u.groups.get.Call(ctx, id, NoBody)
}

func (u *User) SetGroup(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return u.groups.set.Call(ctx, id, Body(data))
}

// SetGroupState applies an action to every light in the group.
func (u *User) SetGroupState(ctx context.Context, id string, action any) (json.RawMessage, error) {
	return u.groupAction.Call(ctx, id, Body(action))
}

func (u *User) DeleteGroup(ctx context.Context, id string) (json.RawMessage, error) {
	return u.groups.remove.Call(ctx, id, NoBody)
}

// schedules

func (u *User) GetSchedules(ctx context.Context) (json.RawMessage, error) {
	return u.verbs.get.Request(ctx, u.schedules.url, NoBody)
}

func (u *User) CreateSchedule(ctx context.Context, data any) (json.RawMessage, error) {
	return u.verbs.post.Request(ctx, u.schedules.url, Body(data))
}

func (u *User) GetSchedule(ctx context.Context, id string) (json.RawMessage, error) {
	return u.schedules.get.Call(ctx, id, NoBody)
}

func (u *User) SetSchedule(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return u.schedules.set.Call(ctx, id, Body(data))
}

func (u *User) DeleteSchedule(ctx context.Context, id string) (json.RawMessage, error) {
	return u.schedules.remove.Call(ctx, id, NoBody)
}

// scenes

func (u *User) GetScenes(ctx context.Context) (json.RawMessage, error) {
	return u.verbs.get.Request(ctx, u.scenes.url, NoBody)
}

func (u *User) CreateScene(ctx context.Context, data any) (json.RawMessage, error) {
	return u.verbs.post.Request(ctx, u.scenes.url, Body(data))
}

func (u *User) GetScene(ctx context.Context, id string) (json.RawMessage, error) {
	return u.scenes.get.Call(ctx, id, NoBody)
}

func (u *User) SetScene(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return u.scenes.set.Call(ctx, id, Body(data))
}

// SetSceneLightState overrides the state stored for one light in a scene.
func (u *User) SetSceneLightState(ctx context.Context, id, lightID string, state any) (json.RawMessage, error) {
	return u.verbs.put.Request(ctx, Slash(u.sceneLights(id), lightID, "state"), Body(state))
}

func (u *User) DeleteScene(ctx context.Context, id string) (json.RawMessage, error) {
	return u.scenes.remove.Call(ctx, id, NoBody)
}

// sensors

func (u *User) GetSensors(ctx context.Context) (json.RawMessage, error) {
	return u.verbs.get.Request(ctx, u.sensors.url, NoBody)
}

func (u *User) CreateSensor(ctx context.Context, data any) (json.RawMessage, error) {
	return u.verbs.post.Request(ctx, u.sensors.url, Body(data))
}

func (u *User) SearchForNewSensors(ctx context.Context, payload Payload) (json.RawMessage, error) {
	return u.verbs.post.Request(ctx, u.sensors.url, payload)
}

func (u *User) GetNewSensors(ctx context.Context) (json.RawMessage, error) {
	return u.verbs.get.Request(ctx, Slash(u.sensors.url, "new"), NoBody)
}

func (u *User) GetSensor(ctx context.Context, id string) (json.RawMessage, error) {
	return u.sensors.get.Call(ctx, id, NoBody)
}

func (u *User) SetSensor(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return u.sensors.set.Call(ctx, id, Body(data))
}

func (u *User) SetSensorConfig(ctx context.Context, id string, config any) (json.RawMessage, error) {
	return u.sensorConfig.Call(ctx, id, Body(config))
}

func (u *User) SetSensorState(ctx context.Context, id string, state any) (json.RawMessage, error) {
	return u.sensorState.Call(ctx, id, Body(state))
}

func (u *User) DeleteSensor(ctx context.Context, id string) (json.RawMessage, error) {
	return u.sensors.remove.Call(ctx, id, NoBody)
}

// rules

func (u *User) GetRules(ctx context.Context) (json.RawMessage, error) {
	return u.verbs.get.Request(ctx, u.rules.url, NoBody)
}

func (u *User) CreateRule(ctx context.Context, data any) (json.RawMessage, error) {
	return u.verbs.post.Request(ctx, u.rules.url, Body(data))
}

func (u *User) GetRule(ctx context.Context, id string) (json.RawMessage, error) {
	return u.rules.get.Call(ctx, id, NoBody)
}

func (u *User) SetRule(ctx context.Context, id string, data any) (json.RawMessage, error) {
	return u.rules.set.Call(ctx, id, Body(data))
}

func (u *User) DeleteRule(ctx context.Context, id string) (json.RawMessage, error) {
	return u.rules.remove.Call(ctx, id, NoBody)
}
