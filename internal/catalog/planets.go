package catalog

// PlanetType classifies a generated planet. The set is fixed: generators and
// pricing both key tables off it.
type PlanetType string

const (
	PlanetTypeBarren      PlanetType = "barren"
	PlanetTypeDesert      PlanetType = "desert"
	PlanetTypeGasGiant    PlanetType = "gas_giant"
	PlanetTypeIce         PlanetType = "ice"
	PlanetTypeJungle      PlanetType = "jungle"
	PlanetTypeOceanic     PlanetType = "oceanic"
	PlanetTypeTerrestrial PlanetType = "terrestrial"
	PlanetTypeVolcanic    PlanetType = "volcanic"
)

// PlanetTypes lists every planet type in stable order.
var PlanetTypes = []PlanetType{
	PlanetTypeBarren,
	PlanetTypeDesert,
	PlanetTypeGasGiant,
	PlanetTypeIce,
	PlanetTypeJungle,
	PlanetTypeOceanic,
	PlanetTypeTerrestrial,
	PlanetTypeVolcanic,
}

// PlantPools holds the allowed flora names per planet type. Gas giants have
// no surface, so no pool.
var PlantPools = map[PlanetType][]string{
	PlanetTypeBarren: {
		"Duststalk Lichen",
		"Regolith Moss",
		"Cinder Bloom",
		"Hollowroot",
	},
	PlanetTypeDesert: {
		"Sunspire Cactus",
		"Glass Thistle",
		"Duneberry Scrub",
		"Mirage Fern",
		"Saltbloom",
		"Ember Sage",
		"Windrow Grass",
		"Scorchvine",
	},
	PlanetTypeGasGiant: {},
	PlanetTypeIce: {
		"Frostcap Lichen",
		"Glacier Reed",
		"Pale Hollyspine",
		"Rimefern",
		"Snowlace Moss",
		"Crystal Bracken",
	},
	PlanetTypeJungle: {
		"Verdant Creeper",
		"Canopy Strangler",
		"Titan Fern",
		"Bloodpetal Orchid",
		"Whispering Liana",
		"Murkroot",
		"Lantern Fungus",
		"Razorleaf Palm",
		"Dewcatcher Bromeliad",
		"Shadowmoss",
		"Coilwood Sapling",
		"Emberfruit Vine",
	},
	PlanetTypeOceanic: {
		"Tidegrass",
		"Abyssal Kelp",
		"Pearl Anemone Bush",
		"Brine Lotus",
		"Current-Weaver Algae",
		"Reefshade Frond",
		"Stormcap Sponge",
		"Lumen Coralweed",
		"Driftbloom",
		"Saltmarsh Reed",
	},
	PlanetTypeTerrestrial: {
		"Meadow Lupine",
		"Ironbark Oak",
		"Copper Birch",
		"Riverreed",
		"Highland Heather",
		"Thornapple Bush",
		"Goldencrest Wheatgrass",
		"Mistwillow",
		"Bellflower Vine",
		"Greymane Moss",
	},
	PlanetTypeVolcanic: {
		"Ashen Bramble",
		"Magma Lily",
		"Sulphur Reed",
		"Obsidian Fern",
		"Pyroclast Moss",
	},
}
