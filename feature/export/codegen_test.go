package export_test

import (
	"strings"
	"testing"

	"excel-exporter/feature/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRecordClass(t *testing.T) {
	code, err := export.GenerateRecordClass(actorTable(), "ExcelImporter")
	require.NoError(t, err)

	assert.Contains(t, code, "namespace ExcelImporter")
	assert.Contains(t, code, "[Serializable]")
	assert.Contains(t, code, "public class ActorData")
	assert.Contains(t, code, "public int Id;")
	assert.Contains(t, code, "public string Name;")
	assert.Contains(t, code, "public float MaxHealth;")
	assert.Contains(t, code, "public bool CanFlee;")

	// Field order follows header order.
	assert.Less(t, strings.Index(code, "Id;"), strings.Index(code, "Name;"))
}

func TestGenerateArrayWrappers(t *testing.T) {
	spawn := &export.Table{Key: "SpawnPoint"}
	code, err := export.GenerateArrayWrappers([]*export.Table{actorTable(), spawn}, "ExcelImporter")
	require.NoError(t, err)

	assert.Contains(t, code, "public class ActorDataArray")
	assert.Contains(t, code, "public ActorData[] items;")
	assert.Contains(t, code, "public class SpawnPointDataArray")
	assert.Contains(t, code, "public SpawnPointData[] items;")
}

func TestGenerateManager(t *testing.T) {
	code, err := export.GenerateManager([]*export.Table{actorTable()}, "ExcelImporter", "ExcelImporter")
	require.NoError(t, err)

	t.Run("Lifecycle", func(t *testing.T) {
		assert.Contains(t, code, "public static void Initialize()")
		assert.Contains(t, code, "if (_isInitialized)")
		assert.Contains(t, code, "Debug.LogWarning(\"ExcelDataManager is already initialized\")")
	})

	t.Run("LoadsThroughWrapper", func(t *testing.T) {
		assert.Contains(t, code, `Resources.Load<TextAsset>("ExcelImporter/Actor")`)
		assert.Contains(t, code, "JsonUtility.FromJson<ActorDataArray>")
	})

	t.Run("IdDetectionLadder", func(t *testing.T) {
		assert.Contains(t, code, `new[] { "Id", "ID", "id", "iD", "ID_", "Id_", "id_" }`)
		assert.Contains(t, code, `field.Name.ToLower().Contains("id")`)
	})

	t.Run("Accessors", func(t *testing.T) {
		assert.Contains(t, code, "public static ActorData GetActorById(int id)")
		assert.Contains(t, code, "public static List<ActorData> GetAllActor()")
		assert.Contains(t, code, "public static List<ActorData> QueryActor(Func<ActorData, bool> predicate)")
	})

	t.Run("Deterministic", func(t *testing.T) {
		again, err := export.GenerateManager([]*export.Table{actorTable()}, "ExcelImporter", "ExcelImporter")
		require.NoError(t, err)
		assert.Equal(t, code, again)
	})
}

func TestGenerateManager_MultiSheetKey(t *testing.T) {
	table := &export.Table{Key: "Config_Buffs"}
	code, err := export.GenerateManager([]*export.Table{table}, "ExcelImporter", "ExcelImporter")
	require.NoError(t, err)

	// Underscored table keys become clean C# identifiers.
	assert.Contains(t, code, "GetConfigBuffsById")
	assert.Contains(t, code, `Resources.Load<TextAsset>("ExcelImporter/Config_Buffs")`)
}
