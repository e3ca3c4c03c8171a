package config

// PackageStateID identifies what a package is doing this frame
type PackageStateID int

const (
	PackageNormal    PackageStateID = iota // riding a belt
	PackageFalling                         // mid-transfer or dropping, lasts one tick after a lift
	PackageDelivered                       // loaded onto the truck, removed on the next sweep
)

// TruckStateID identifies the truck cycle phase
type TruckStateID int

const (
	TruckWaiting    TruckStateID = iota // parked at the dock, accepting packages
	TruckDelivering                     // driving off-screen with a full load
	TruckReturning                      // driving back empty
)

// CharacterStateID identifies a character pose
type CharacterStateID int

const (
	CharacterIdle     CharacterStateID = iota
	CharacterPrepared                  // braced under a package about to transfer
)

// SideID distinguishes the two character columns
type SideID int

const (
	SideLeft SideID = iota
	SideRight
)

// DirectionID is a horizontal travel direction
type DirectionID int

const (
	DirLeft DirectionID = iota
	DirRight
)
