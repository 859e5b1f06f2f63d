package export

import (
	"bytes"
	"fmt"
	"text/template"
)

// classTemplate emits one [Serializable] data class per table. Public fields
// are required: JsonUtility ignores properties.
var classTemplate = template.Must(template.New("class").Parse(`using System;

namespace {{.Namespace}}
{
    /// <summary>
    /// {{.Key}} data table
    /// </summary>
    [Serializable]
    public class {{.Class}}Data
    {
{{- range .Fields}}
        public {{.Type}} {{.Name}};
{{- end}}
    }
}
`))

// wrapperTemplate emits the array-wrapper classes. JsonUtility cannot
// deserialize a bare top-level array, so every document nests its rows under
// a named "items" field and loads through one of these.
var wrapperTemplate = template.Must(template.New("wrappers").Parse(`using System;

namespace {{.Namespace}}
{
{{- range .Tables}}
    [Serializable]
    public class {{.Class}}DataArray
    {
        public {{.Class}}Data[] items;
    }
{{end -}}
}
`))

var managerTemplate = template.Must(template.New("manager").Parse(`using System;
using System.Collections.Generic;
using System.Linq;
using System.Reflection;
using UnityEngine;

namespace {{.Namespace}}
{
    /// <summary>
    /// Central manager that loads every exported table once.
    /// </summary>
    public static class ExcelDataManager
    {
        private static bool _isInitialized = false;
        private const BindingFlags FieldFlags = BindingFlags.Public | BindingFlags.Instance;
{{range .Tables}}
        private static Dictionary<int, {{.Class}}Data> _{{.Camel}}Dict = new Dictionary<int, {{.Class}}Data>();
        private static List<{{.Class}}Data> _{{.Camel}}List = new List<{{.Class}}Data>();
{{end}}
        /// <summary>
        /// Loads all tables. Safe to call more than once; extra calls warn and no-op.
        /// </summary>
        public static void Initialize()
        {
            if (_isInitialized)
            {
                Debug.LogWarning("ExcelDataManager is already initialized");
                return;
            }
{{range .Tables}}
            var {{.Camel}}Json = Resources.Load<TextAsset>("{{$.ResourceDir}}/{{.Key}}");
            if ({{.Camel}}Json != null && !string.IsNullOrEmpty({{.Camel}}Json.text))
            {
                try
                {
                    var {{.Camel}}Array = JsonUtility.FromJson<{{.Class}}DataArray>({{.Camel}}Json.text.Trim());
                    if ({{.Camel}}Array == null || {{.Camel}}Array.items == null)
                    {
                        Debug.LogError("Failed to load {{.Key}} data: empty deserialization result");
                    }
                    else
                    {
                        foreach (var item in {{.Camel}}Array.items)
                        {
                            if (item == null) continue;
                            _{{.Camel}}List.Add(item);
                            var idValue = GetIdValue(item);
                            if (idValue != null && idValue != 0)
                            {
                                _{{.Camel}}Dict[idValue.Value] = item;
                            }
                        }
                        Debug.Log($"Loaded {{.Key}} data: {_{{.Camel}}List.Count} records, {_{{.Camel}}Dict.Count} indexed");
                    }
                }
                catch (System.Exception e)
                {
                    Debug.LogError($"Error while loading {{.Key}} data: {e.Message}");
                }
            }
            else
            {
                Debug.LogWarning("Missing or empty data file: {{$.ResourceDir}}/{{.Key}}");
            }
{{end}}
            _isInitialized = true;
            Debug.Log("ExcelDataManager initialized");
        }

        /// <summary>
        /// Resolves the identifier value of a record: exact Id variants first,
        /// then the first field whose name contains "id".
        /// </summary>
        private static int? GetIdValue(object obj)
        {
            if (obj == null) return null;

            var type = obj.GetType();
            var idFieldNames = new[] { "Id", "ID", "id", "iD", "ID_", "Id_", "id_" };

            foreach (var fieldName in idFieldNames)
            {
                var idField = type.GetField(fieldName, FieldFlags);
                if (idField != null)
                {
                    var value = idField.GetValue(obj);
                    if (value is int intValue && intValue != 0)
                        return intValue;
                    if (value != null && int.TryParse(value.ToString(), out int parsedValue) && parsedValue != 0)
                        return parsedValue;
                }
            }

            foreach (var field in type.GetFields(FieldFlags))
            {
                if (field.Name.ToLower().Contains("id"))
                {
                    var value = field.GetValue(obj);
                    if (value is int intValue && intValue != 0)
                        return intValue;
                    if (value != null && int.TryParse(value.ToString(), out int parsedValue) && parsedValue != 0)
                        return parsedValue;
                }
            }

            return null;
        }
{{range .Tables}}
        /// <summary>
        /// Returns the {{.Key}} record with the given id, or null.
        /// </summary>
        public static {{.Class}}Data Get{{.Class}}ById(int id)
        {
            if (!_isInitialized) Initialize();
            _{{.Camel}}Dict.TryGetValue(id, out var data);
            return data;
        }

        /// <summary>
        /// Returns all {{.Key}} records.
        /// </summary>
        public static List<{{.Class}}Data> GetAll{{.Class}}()
        {
            if (!_isInitialized) Initialize();
            return _{{.Camel}}List;
        }

        /// <summary>
        /// Returns the {{.Key}} records matching the predicate.
        /// </summary>
        public static List<{{.Class}}Data> Query{{.Class}}(Func<{{.Class}}Data, bool> predicate)
        {
            if (!_isInitialized) Initialize();
            return _{{.Camel}}List.Where(predicate).ToList();
        }
{{end -}}
    }
}
`))

type classField struct {
	Name string
	Type string
}

type managerTable struct {
	Key   string
	Class string
	Camel string
}

func newManagerTable(t *Table) managerTable {
	return managerTable{
		Key:   t.Key,
		Class: ToPascalCase(t.Key),
		Camel: ToCamelCase(t.Key),
	}
}

// GenerateRecordClass emits the C# data class for one table.
func GenerateRecordClass(t *Table, namespace string) (string, error) {
	fields := make([]classField, len(t.Columns))
	for i, col := range t.Columns {
		fields[i] = classField{Name: col.Name, Type: string(col.Type)}
	}
	data := struct {
		Namespace string
		Key       string
		Class     string
		Fields    []classField
	}{namespace, t.Key, ToPascalCase(t.Key), fields}

	var buf bytes.Buffer
	if err := classTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("record class for %s: %w", t.Key, err)
	}
	return buf.String(), nil
}

// GenerateArrayWrappers emits the wrapper classes for all tables.
func GenerateArrayWrappers(tables []*Table, namespace string) (string, error) {
	data := struct {
		Namespace string
		Tables    []managerTable
	}{namespace, managerTables(tables)}

	var buf bytes.Buffer
	if err := wrapperTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("array wrappers: %w", err)
	}
	return buf.String(), nil
}

// GenerateManager emits the static data manager over all tables.
// resourceDir is the Resources-relative folder the documents load from.
func GenerateManager(tables []*Table, namespace, resourceDir string) (string, error) {
	data := struct {
		Namespace   string
		ResourceDir string
		Tables      []managerTable
	}{namespace, resourceDir, managerTables(tables)}

	var buf bytes.Buffer
	if err := managerTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("data manager: %w", err)
	}
	return buf.String(), nil
}

func managerTables(tables []*Table) []managerTable {
	out := make([]managerTable, len(tables))
	for i, t := range tables {
		out[i] = newManagerTable(t)
	}
	return out
}
