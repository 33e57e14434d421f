package submission

const (
	q3 = "¿Cómo está en el grupo uno la segunda vez?"
	q4 = "¿Cómo está en el subgrupo uno la primera vez?"
	q5 = "¿Cómo está en el subgrupo uno la segunda vez?"
	q6 = "¿Cómo está en el subgrupo uno la tercera vez?"
)

var surveyJSON = []byte(`{
    "formhub/uuid": "b7b8a1b4c6d34ee7a2b8",
    "group1/q1": "¿Cómo está en el grupo uno la primera vez?",
    "group1/q3": "¿Cómo está en el grupo uno la segunda vez?",
    "group2/q2": "¿Cómo está en el grupo dos?",
    "group2/subgroup1/q4": "¿Cómo está en el subgrupo uno la primera vez?",
    "group2/subgroup1/q5": "¿Cómo está en el subgrupo uno la segunda vez?",
    "group2/subgroup1/q6": "¿Cómo está en el subgrupo uno la tercera vez?",
    "group3/q7": "otra",
    "meta/instanceID": "uuid:0b1c6d2e-3f4a-4b5c-8d6e-7f8091a2b3c4",
    "_id": 1
}`)

var surveyXML = []byte(`<?xml version="1.0" encoding="utf-8"?>
<aSurveyForm xmlns:jr="http://openrosa.org/javarosa" id="aSurveyForm" version="1">
    <formhub>
        <uuid>b7b8a1b4c6d34ee7a2b8</uuid>
    </formhub>
    <group1>
        <q1>¿Cómo está en el grupo uno la primera vez?</q1>
        <q3>¿Cómo está en el grupo uno la segunda vez?</q3>
    </group1>
    <group2>
        <q2>¿Cómo está en el grupo dos?</q2>
        <subgroup1>
            <q4>¿Cómo está en el subgrupo uno la primera vez?</q4>
            <q5>¿Cómo está en el subgrupo uno la segunda vez?</q5>
            <q6>¿Cómo está en el subgrupo uno la tercera vez?</q6>
        </subgroup1>
    </group2>
    <group3>
        <q7>otra</q7>
    </group3>
    <meta>
        <jr:instanceID>uuid:0b1c6d2e-3f4a-4b5c-8d6e-7f8091a2b3c4</jr:instanceID>
    </meta>
    <_id>1</_id>
</aSurveyForm>`)

var householdJSON = []byte(`{
    "village": "Tikal",
    "household/head": "Ana",
    "household/member": [
        {"household/member/name": "Luis", "household/member/age": 12},
        {"household/member/name": "Sofía", "household/member/age": 9, "household/member/school/grade": "4"},
        {"household/member/age": 40}
    ],
    "_geolocation": [15.2, -89.6],
    "_id": 7
}`)

var householdXML = []byte(`<household_survey>
  <village>Tikal</village>
  <household>
    <head>Ana</head>
    <member><name>Luis</name><age>12</age></member>
    <member><name>Sofía</name><age>9</age><school><grade>4</grade></school></member>
    <member><age>40</age></member>
  </household>
  <_id>7</_id>
</household_survey>`)
