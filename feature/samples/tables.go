package samples

// Definition describes one sample workbook: a single styled sheet with a
// header row and data rows.
type Definition struct {
	Name    string
	Sheet   string
	Headers []string
	Rows    [][]any
}

// Definitions returns the sample game configuration tables. The set covers
// every inferred column type, an integer column promoted to float by a later
// decimal value, and empty cells that default on export.
func Definitions() []Definition {
	return []Definition{
		{
			Name:  "Actor",
			Sheet: "Actor",
			Headers: []string{
				"Id", "Name", "ActorType", "MaxHealth", "Attack", "Defense",
				"MoveSpeed", "CritRate", "AttackRange", "PrefabPath", "Description",
			},
			// ActorType: 1=Player, 2=Monster, 3=NPC
			Rows: [][]any{
				{1, "Rookie", 1, 100, 15, 10, 5.0, 0.1, 15.0, "Prefabs/Player/Player", "Starting player character"},
				{2, "Veteran", 1, 150, 20, 15, 5.5, 0.15, 15.0, "Prefabs/Player/Veteran", "Battle-hardened soldier"},
				{3, "Sniper", 1, 80, 35, 5, 4.5, 0.25, 30.0, "Prefabs/Player/Sniper", "Long-range specialist"},
				{101, "Zombie", 2, 50, 8, 3, 3.0, 0.05, 2.0, "Prefabs/Monster/Zombie", "Common zombie"},
				{102, "Rabid Dog", 2, 30, 12, 2, 6.0, 0.1, 1.5, "Prefabs/Monster/Dog", "Fast-moving mutt"},
				{201, "Elite Zombie", 2, 150, 20, 8, 4.0, 0.1, 2.5, "Prefabs/Monster/EliteZombie", "Hardened zombie"},
				{301, "Zombie King", 2, 1000, 35, 20, 3.0, 0.15, 3.0, "Prefabs/Monster/ZombieKing", "Zombie boss"},
				{501, "Merchant", 3, 100, 0, 0, 0, 0, 0, "Prefabs/NPC/Merchant", "Weapon trader"},
			},
		},
		{
			Name:  "Monster",
			Sheet: "Monster",
			Headers: []string{
				"Id", "ActorId", "MonsterType", "ExpReward", "GoldReward",
				"DetectionRange", "CanFlee", "FleeHealthPercent", "DropItemIds", "PatrolRadius",
			},
			// MonsterType: 0=Normal, 1=Elite, 2=Boss
			Rows: [][]any{
				{1, 101, 0, 30, 10, 12.0, false, 0.0, "1001,1002", 10.0},
				{2, 102, 0, 25, 8, 15.0, true, 0.2, "1001", 15.0},
				{101, 201, 1, 100, 50, 15.0, false, 0.0, "1002,2001", 12.0},
				{201, 301, 2, 500, 300, 20.0, false, 0.0, "2001,2002", 0.0},
			},
		},
		{
			Name:  "Item",
			Sheet: "Item",
			Headers: []string{
				"Id", "Name", "ItemType", "Quality", "Stackable", "MaxStack",
				"BuyPrice", "SellPrice", "IconPath", "Description",
			},
			// ItemType: 0=Consumable, 3=Ammo, 4=Material, 5=Quest
			Rows: [][]any{
				{1001, "Small Medkit", 0, 0, true, 10, 50, 25, "Icons/Item/HealSmall", "Restores 30 health"},
				{1002, "Large Medkit", 0, 1, true, 5, 150, 75, "Icons/Item/HealLarge", "Restores 100 health"},
				{1101, "Pistol Ammo", 3, 0, true, 100, 10, 5, "Icons/Item/AmmoPistol", "Ammunition for pistols"},
				{1201, "Scrap Parts", 4, 0, true, 99, 20, 10, "Icons/Item/PartBroken", "Used for repairs"},
				{1301, "Mystery Key", 5, 2, false, 1, 0, 0, "Icons/Item/MysteryKey", "Opens the locked room"},
			},
		},
		{
			Name:  "Weapon",
			Sheet: "Weapon",
			Headers: []string{
				"Id", "Name", "WeaponType", "Quality", "Damage", "FireRate",
				"Range", "MagazineSize", "ReloadTime", "RequiredLevel",
				"BuyPrice", "PrefabPath", "Description",
			},
			// WeaponType: 0=Pistol, 1=Rifle, 3=Shotgun, 4=Sniper, 6=Melee
			Rows: [][]any{
				{2001, "M9 Pistol", 0, 0, 15, 5.0, 25.0, 15, 1.5, 1, 200, "Prefabs/Weapon/M9", "Standard sidearm"},
				{2101, "M4A1 Rifle", 1, 1, 20, 10.0, 40.0, 30, 2.0, 3, 600, "Prefabs/Weapon/M4A1", "Well-balanced rifle"},
				{2301, "M870 Shotgun", 3, 1, 8, 1.2, 15.0, 8, 3.0, 3, 700, "Prefabs/Weapon/M870", "Devastating up close"},
				{2401, "M24 Sniper", 4, 2, 80, 0.8, 80.0, 5, 3.0, 10, 1500, "Prefabs/Weapon/M24", "Precision rifle"},
				{2601, "Combat Knife", 6, 0, 30, 2.0, 2.0, 1, 0, 1, 150, "Prefabs/Weapon/Knife", "Fast melee weapon"},
			},
		},
		{
			Name:  "Quest",
			Sheet: "Quest",
			Headers: []string{
				"Id", "Name", "NPCId", "Type", "TargetId", "TargetCount",
				"RewardExp", "RewardGold", "RewardItemIds", "PreQuestId", "Description",
			},
			// Type: 0=Kill, 1=Collect, 2=Talk
			Rows: [][]any{
				{1, "Zombie Cleanup", 2, 0, 101, 10, 100, 50, "1001,1101", 0, "Kill 10 zombies"},
				{2, "Scavenger", 2, 1, 1201, 5, 80, 30, "1201", 0, "Collect 5 scrap parts"},
				{3, "Elite Hunt", 2, 0, 201, 3, 300, 150, "2001,1002", 1, "Kill 3 elite zombies"},
				{4, "Meet the Smith", 2, 2, 503, 1, 50, 20, "", 2, "Talk to the blacksmith"},
			},
		},
		{
			Name:  "SpawnPoint",
			Sheet: "SpawnPoint",
			Headers: []string{
				"Id", "MonsterId", "PosX", "PosY", "PosZ",
				"RespawnTime", "MaxCount", "PatrolRadius", "Description",
			},
			Rows: [][]any{
				{1, 1, 20.0, 0.0, 20.0, 30.0, 3, 10.0, "Eastern zombie spawn"},
				{2, 1, -20.0, 0.0, 20.0, 30.0, 3, 10.0, "Western zombie spawn"},
				{3, 101, 30.0, 0.0, 0.0, 120.0, 1, 12.0, "Elite spawn"},
				{4, 201, 0.0, 0.0, 50.0, 600.0, 1, 0.0, "Boss spawn"},
			},
		},
	}
}
